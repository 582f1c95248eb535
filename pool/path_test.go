package pool

import "testing"

func TestPathBuilder_AppendWithDot(t *testing.T) {
	pb := AcquirePathBuilder()
	defer pb.Release()

	pb.AppendWithDot("animations")
	pb.AppendWithDot("name")

	if got := pb.String(); got != "animations.name" {
		t.Errorf("String() = %q; want %q", got, "animations.name")
	}
}

func TestPathBuilder_AppendIndex(t *testing.T) {
	pb := AcquirePathBuilder()
	defer pb.Release()

	pb.AppendWithDot("channels")
	pb.AppendIndex(12)
	pb.AppendWithDot("sampler")

	if got := pb.String(); got != "channels[12].sampler" {
		t.Errorf("String() = %q; want %q", got, "channels[12].sampler")
	}
}

func TestPathBuilder_Reset(t *testing.T) {
	pb := AcquirePathBuilder()
	defer pb.Release()

	pb.WriteString("stale")
	pb.Reset()

	if pb.Len() != 0 {
		t.Errorf("Len() after Reset = %d; want 0", pb.Len())
	}
	if got := pb.String(); got != "" {
		t.Errorf("String() after Reset = %q; want empty", got)
	}
}

func TestPathBuilder_PoolReuse(t *testing.T) {
	pb := AcquirePathBuilder()
	pb.WriteString("leftover")
	pb.Release()

	pb2 := AcquirePathBuilder()
	defer pb2.Release()
	if pb2.Len() != 0 {
		t.Error("reacquired builder not reset")
	}
}

func TestBuildPath(t *testing.T) {
	got := BuildPath(func(b *PathBuilder) {
		b.AppendWithDot("animations")
		b.AppendIndex(2)
		b.AppendWithDot("channels")
		b.AppendIndex(0)
		b.AppendWithDot("sampler")
	})

	want := "animations[2].channels[0].sampler"
	if got != want {
		t.Errorf("BuildPath() = %q; want %q", got, want)
	}
}

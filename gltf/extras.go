package gltf

import "encoding/json"

// Extras is the opaque application-specific payload a record may carry.
// Validation never looks inside it.
type Extras = json.RawMessage

// Extensions holds extension-specific payloads keyed by extension name.
// The contents are opaque to this package.
type Extensions = map[string]json.RawMessage

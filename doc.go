// Package gltfvalidator provides structural validation for parsed glTF 2.0
// documents.
//
// The validator checks that every index stored inside a document points at
// an existing element of the collection it addresses. It never stops at the
// first finding: a single pass collects every violation, each tagged with
// the exact dotted/bracketed location of the offending field.
//
// # Quick Start
//
//	import (
//	    gv "github.com/gogltf/validator"
//	    "github.com/gogltf/validator/engine"
//	    "github.com/gogltf/validator/gltf"
//	)
//
//	doc, err := gltf.Decode(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	v := engine.New(gv.WithDuplicateTargets(true))
//	result := v.Validate(doc)
//	for _, issue := range result.Errors() {
//	    fmt.Println(issue)
//	}
//
// A result with zero error issues means all cross-references in the
// document are internally consistent.
package gltfvalidator

package gltfvalidator

// Version is the version of the validator library.
const Version = "0.1.0"

// SupportedGLTFVersion is the glTF specification version this validator
// understands.
const SupportedGLTFVersion = "2.0"

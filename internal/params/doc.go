// Package params defines the parameter record shared by the generate and
// publish pipelines: the project type, the absence sentinel used for optional
// text fields, decoding of the JSON-encoded component lists, and JSON Schema
// validation of the record before either pipeline touches an external tool.
package params

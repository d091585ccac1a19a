// Package serializer provides utilities for reading and writing structured
// recipe data in various formats.
//
// Three output formats are supported:
//   - JSON: machine-readable, indented
//   - YAML: human-readable, suitable for editing and version control
//   - Table: flattened FIELD/VALUE text for terminal viewing (write-only)
//
// Usage:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(parsed); err != nil {
//		return err
//	}
//
// Reading back is format-symmetric for JSON and YAML:
//
//	r, err := serializer.FromFile[recipe.Recipe]("structured.yaml")
//
// For HTTP responses, RespondJSON buffers the encoding before writing
// headers so a failed encode never produces a partial response.
package serializer

// Package generator adapts the four procvis generators to a common
// frame-producing [Source] so the CLI, exporters and live view can drive any
// of them the same way.
//
// Sources are built from a [config.Config] through a [Registry]:
//
//	reg := generator.NewRegistry()
//	src, err := reg.Get(cfg)
//	defer src.Close()
//	for i := 0; i < n; i++ {
//	    frame, _ := src.Frame()
//	    src.Advance()
//	}
//
// Sources with interactive controls also implement [Editable] (cell toggling)
// or [Navigable] (viewport movement).
package generator

// Package routes describes the routes an application registers, before any
// OpenAPI generation happens.
//
// A Descriptor pairs an HTTP method and a raw path template with the
// controller method that serves it. Templates may mark parameters as
// "@name", ":name" or "{name}"; the parameter names are extracted in order
// and carried on the descriptor.
//
//	reg := routes.NewRegistry()
//	reg.Get("/samples", "SampleController@many").Name("sample.many")
//	reg.Post("/samples/create", "SampleController@create").Name("sample.create")
//
//	descriptors, err := reg.Descriptors()
package routes

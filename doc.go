// Package schwag provides request and response validation for HTTP
// services described by Swagger-style schema documents.
//
// The library consists of five primary packages:
//
//   - registry: Register and resolve schema documents by name
//   - routes: Path template rewriting and validation reference construction
//   - schema: Validate values against schema nodes resolved by reference
//   - validate: The per-route coercion and validation engine
//   - middleware: net/http integration for chi routers
//
// # Quick Start
//
// Register a schema document and validate requests against it:
//
//	reg := registry.New()
//	if err := reg.AddFile("petstore.yaml"); err != nil {
//		log.Fatal(err)
//	}
//	reg.Freeze()
//
//	engine := validate.New(schema.New(reg))
//	configs, err := validate.AllRouteConfigs(reg, "PetStore")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	m := middleware.New(engine)
//	router := chi.NewRouter()
//	for _, rc := range configs {
//		m.Mount(router, rc, handlerFor(rc))
//	}
//
// Requests that fail validation are rejected with a 400 and the full
// error list; handlers read coerced parameter values through
// middleware.BundleFromContext. Outside production mode, response
// bodies are checked against their declared schemas before reaching
// the client.
//
// # Validation Semantics
//
// Parameter values arrive as strings and are coerced to their declared
// primitive type before validation: "42" becomes 42 for a number
// parameter, "true" becomes true for a boolean. Values that cannot be
// coerced are passed through unchanged so that schema validation
// rejects them with a precise error rather than a silent drop.
// Declared defaults fill in absent optional parameters verbatim and
// are never validated. Request bodies are validated as-is, never
// coerced.
//
// Validation accumulates every error for a request rather than
// stopping at the first, so clients see the complete list in one round
// trip.
//
// # Command-Line Interface
//
// In addition to the library packages, schwag provides a command-line
// interface:
//
//	# Serve a schema-validated API skeleton
//	schwag serve -schema petstore.yaml
//
//	# Run the MCP server over stdio
//	schwag mcp
//
// Install the CLI:
//
//	go install github.com/bguiz/schwag/cmd/schwag@latest
package schwag

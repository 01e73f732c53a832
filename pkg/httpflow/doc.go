// Package httpflow runs validation chains against HTTP requests.
//
// A request is split into source documents - decoded JSON body, query
// parameters, route parameters (via chi), and headers - and each chain
// validates against the source its schema named with the "in" selector
// (body by default). Sanitizer commits land in the source documents, which
// handlers read back from the request context alongside the report.
//
// # Usage
//
//	chains, _ := schema.CompileYAML(signupSchema)
//
//	r := chi.NewRouter()
//	r.With(httpflow.Validate(chains)).Post("/signup", func(w http.ResponseWriter, r *http.Request) {
//		if report := httpflow.GetReport(r); !report.IsEmpty() {
//			writeJSON(w, http.StatusUnprocessableEntity, report.ByPath())
//			return
//		}
//		body, _ := httpflow.GetDocuments(r)[httpflow.SourceBody]
//		// body carries sanitized values
//	})
//
// The request locale, negotiated from the Accept-Language header against
// the configured supported tags, reaches custom rules through the
// validation context.
package httpflow

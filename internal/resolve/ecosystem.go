package resolve

// EcosystemDoc is the workspace-side view of one product: its long-form
// notes and an optional structured JSON sidecar.
type EcosystemDoc struct {
	Slug    string      `json:"slug"`
	Content string      `json:"content"`
	Data    interface{} `json:"data"`
}

// Ecosystem resolves a product's document, trying the memory notes first and
// the products directory second. Both can be absent; the shape still comes
// back with empty fields.
func (r *Resolver) Ecosystem(slug string) EcosystemDoc {
	doc := EcosystemDoc{Slug: slug}

	doc.Content = r.ws.ReadFile("memory/ecosystem/" + slug + ".md")
	if doc.Content == "" {
		doc.Content = r.ws.ReadFile("products/" + slug + ".md")
	}

	var data interface{}
	if r.ws.ReadJSON("products/"+slug+".json", &data) {
		doc.Data = data
	}
	return doc
}

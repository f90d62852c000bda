package docshift

// Canonical registrations for the four built-in output formats, each using
// its default options.
var (
	JSONFormat = NewFormat("json", ToJSON)
	YAMLFormat = NewFormat("yaml", ToYAML)
	XMLFormat  = NewFormat("xml", func(doc any) (string, error) { return ToXML(doc) })
	CSVFormat  = NewFormat("csv", func(doc any) (string, error) { return ToCSV(doc) })
)

// Builtin bundles the built-in formats into a single Registration:
//
//	r, _ := docshift.NewRegistry(docshift.Builtin())
//	out, _ := r.Encode("xml", doc)
func Builtin() Registration {
	return Group(JSONFormat, YAMLFormat, XMLFormat, CSVFormat)
}

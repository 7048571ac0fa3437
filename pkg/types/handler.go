package types

// ArtifactHandler describes how a packaging type maps onto files
type ArtifactHandler struct {
	Type       string
	Extension  string
	Classifier string
}

var handlers = map[string]ArtifactHandler{
	"jar":          {Type: "jar", Extension: "jar"},
	"pom":          {Type: "pom", Extension: "pom"},
	"war":          {Type: "war", Extension: "war"},
	"ear":          {Type: "ear", Extension: "ear"},
	"rar":          {Type: "rar", Extension: "rar"},
	"ejb":          {Type: "ejb", Extension: "jar"},
	"ejb-client":   {Type: "ejb-client", Extension: "jar", Classifier: "client"},
	"bundle":       {Type: "bundle", Extension: "jar"},
	"maven-plugin": {Type: "maven-plugin", Extension: "jar"},
	"test-jar":     {Type: "test-jar", Extension: "jar", Classifier: "tests"},
	"java-source":  {Type: "java-source", Extension: "jar", Classifier: "sources"},
	"javadoc":      {Type: "javadoc", Extension: "jar", Classifier: "javadoc"},
}

// HandlerFor returns the handler for a type. Unknown types use the type
// itself as extension.
func HandlerFor(typ string) ArtifactHandler {
	if h, ok := handlers[typ]; ok {
		return h
	}
	return ArtifactHandler{Type: typ, Extension: typ}
}

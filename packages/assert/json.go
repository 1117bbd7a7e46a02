package assert

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"
)

// JSONPath fails unless the value at the given gjson path exists and equals
// want. Values are compared through their default string rendering, so
// numeric JSON values match both int and float expectations.
func JSONPath(doc []byte, path string, want any) {
	res := gjson.GetBytes(doc, path)
	True(res.Exists())
	True(fmt.Sprintf("%v", res.Value()) == fmt.Sprintf("%v", want))
}

// JSONSchema fails unless doc validates against the JSON schema stored at
// schemaPath. An unreadable schema file fails the test as well.
func JSONSchema(doc []byte, schemaPath string) {
	schemaData, err := os.ReadFile(schemaPath)
	True(err == nil)

	schemaLoader := gojsonschema.NewBytesLoader(schemaData)
	documentLoader := gojsonschema.NewBytesLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	True(err == nil && result.Valid())
}

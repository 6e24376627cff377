package generator

import "github.com/vitalvas/oasgen/openapi"

// BuildResponses assembles the responses object of a route. The success
// response references the model's component schema; error and failure
// responses, when present, carry a plain string schema.
func BuildResponses(model Model, codes StatusCodes) map[string]*openapi.Response {
	responses := map[string]*openapi.Response{
		codes.Success.Code: {
			Description: codes.Success.Reason,
			Content:     openapi.JSONContent(openapi.SchemaRef(string(model))),
		},
	}

	for _, entry := range []*StatusEntry{codes.Error, codes.Failure} {
		if entry == nil {
			continue
		}
		responses[entry.Code] = &openapi.Response{
			Description: entry.Reason,
			Content:     openapi.JSONContent(&openapi.Schema{Type: "string"}),
		}
	}

	return responses
}

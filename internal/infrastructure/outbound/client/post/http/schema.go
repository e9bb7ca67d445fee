package http_client

import (
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const postSchemaBody = `{
	"type": "object",
	"required": ["id", "title", "body", "userId"],
	"properties": {
		"id": {"type": "integer"},
		"title": {"type": "string"},
		"body": {"type": "string"},
		"userId": {"type": "integer"}
	}
}`

var (
	postSchema = jsonschema.MustCompileString("post.schema.json", postSchemaBody)
	listSchema = jsonschema.MustCompileString("post_list.schema.json",
		fmt.Sprintf(`{"type": "array", "items": %s}`, postSchemaBody))
)

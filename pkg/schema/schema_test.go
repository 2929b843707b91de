package schema_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/effective-security/safeagents/pkg/llmutils"
	"github.com/effective-security/safeagents/pkg/schema"
	"github.com/invopop/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type SearchType string

const (
	Web   SearchType = "web"
	Image SearchType = "image"
	Video SearchType = "video"
)

// Search represents a search request with various parameters.
type Search struct {
	Topic string     `json:"topic,omitempty" jsonschema:"title=Topic,description=Topic of the search\\, with coma.,example=golang"`
	Query string     `json:"query" jsonschema:"title=Query,description=Query to search for relevant content,example=what is golang"`
	Type  SearchType `json:"type"  jsonschema:"title=Type,description=Type of search,default=web,enum=web,enum=image,enum=video"`
	Args  []*KVPair  `json:"args,omitempty" jsonschema:"title=Args,description=Arguments for the search"`
	Prov  *KVPair    `json:"prov,omitempty" jsonschema:"title=Prov,description=Provider for the search"`
}

// KVPair represents a key-value pair.
type KVPair struct {
	Key   string `json:"key" jsonschema:"title=Key,description=Key of the pair"`
	Value string `json:"value" jsonschema:"title=Value,description=Value of the pair"`
}

func TestSchema(t *testing.T) {
	t.Parallel()

	t.Run("Search", func(t *testing.T) {
		t.Parallel()
		s, err := schema.New(reflect.TypeOf(Search{}))
		require.NoError(t, err)

		exp := `{
	"properties": {
		"topic": {
			"type": "string",
			"title": "Topic",
			"description": "Topic of the search, with coma.",
			"examples": [
				"golang"
			]
		},
		"query": {
			"type": "string",
			"title": "Query",
			"description": "Query to search for relevant content",
			"examples": [
				"what is golang"
			]
		},
		"type": {
			"type": "string",
			"enum": [
				"web",
				"image",
				"video"
			],
			"title": "Type",
			"description": "Type of search",
			"default": "web"
		},
		"args": {
			"items": {
				"properties": {
					"key": {
						"type": "string",
						"title": "Key",
						"description": "Key of the pair"
					},
					"value": {
						"type": "string",
						"title": "Value",
						"description": "Value of the pair"
					}
				},
				"type": "object",
				"required": [
					"key",
					"value"
				]
			},
			"type": "array",
			"title": "Args",
			"description": "Arguments for the search"
		},
		"prov": {
			"properties": {
				"key": {
					"type": "string",
					"title": "Key",
					"description": "Key of the pair"
				},
				"value": {
					"type": "string",
					"title": "Value",
					"description": "Value of the pair"
				}
			},
			"type": "object",
			"required": [
				"key",
				"value"
			],
			"title": "Prov",
			"description": "Provider for the search"
		}
	},
	"type": "object",
	"required": [
		"query",
		"type"
	]
}`
		assert.Equal(t, exp, s.String())
		assert.Equal(t, exp, llmutils.ToJSONIndent(s.Parameters))
	})

	t.Run("Deploy", func(t *testing.T) {
		t.Parallel()

		type deployRequest struct {
			Deployment string `json:"deployment" jsonschema:"description=Deployment name"`
			Region     string `json:"region" jsonschema:"description=Azure region,enum=eastus,enum=westus"`
		}

		s, err := schema.New(reflect.TypeOf(deployRequest{}))
		require.NoError(t, err)
		exp := `{
	"properties": {
		"deployment": {
			"type": "string",
			"description": "Deployment name"
		},
		"region": {
			"type": "string",
			"enum": [
				"eastus",
				"westus"
			],
			"description": "Azure region"
		}
	},
	"type": "object",
	"required": [
		"deployment",
		"region"
	]
}`
		assert.Equal(t, exp, s.String())

		// unmarshal
		var sc jsonschema.Schema
		err = json.Unmarshal([]byte(exp), &sc)
		require.NoError(t, err)
		assert.Equal(t, 2, sc.Properties.Len())
	})

	t.Run("Cached", func(t *testing.T) {
		t.Parallel()

		s1, err := schema.New(reflect.TypeOf(KVPair{}))
		require.NoError(t, err)
		s2, err := schema.New(reflect.TypeOf(KVPair{}))
		require.NoError(t, err)
		assert.Same(t, s1, s2)
	})
}

func TestSchemaFromAny(t *testing.T) {
	t.Parallel()

	sc, err := schema.FromAny(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query": map[string]any{
				"type": "string",
			},
		},
		"required": []string{"query"},
	})
	require.NoError(t, err)

	exp := `{
	"properties": {
		"query": {
			"type": "string"
		}
	},
	"type": "object",
	"required": [
		"query"
	]
}`
	assert.Equal(t, exp, llmutils.ToJSONIndent(sc))
}

func TestSchemaNewResponseFormat(t *testing.T) {
	t.Parallel()

	rf, err := schema.NewResponseFormat(reflect.TypeOf(Search{}), true)
	require.NoError(t, err)
	exp := `{
	"type": "json_schema",
	"json_schema": {
		"name": "Search",
		"strict": true,
		"schema": {
			"type": "object",
			"properties": {
				"args": {
					"type": "array",
					"title": "Args",
					"description": "Arguments for the search",
					"items": {
						"type": "object",
						"properties": {
							"key": {
								"type": "string",
								"title": "Key",
								"description": "Key of the pair"
							},
							"value": {
								"type": "string",
								"title": "Value",
								"description": "Value of the pair"
							}
						},
						"additionalProperties": false,
						"required": [
							"key",
							"value"
						]
					}
				},
				"prov": {
					"type": "object",
					"title": "Prov",
					"description": "Provider for the search",
					"properties": {
						"key": {
							"type": "string",
							"title": "Key",
							"description": "Key of the pair"
						},
						"value": {
							"type": "string",
							"title": "Value",
							"description": "Value of the pair"
						}
					},
					"additionalProperties": false,
					"required": [
						"key",
						"value"
					]
				},
				"query": {
					"type": "string",
					"title": "Query",
					"description": "Query to search for relevant content",
					"examples": [
						"what is golang"
					]
				},
				"topic": {
					"type": "string",
					"title": "Topic",
					"description": "Topic of the search, with coma.",
					"examples": [
						"golang"
					]
				},
				"type": {
					"type": "string",
					"title": "Type",
					"description": "Type of search",
					"enum": [
						"web",
						"image",
						"video"
					],
					"default": "web"
				}
			},
			"additionalProperties": false,
			"required": [
				"query",
				"type"
			]
		}
	}
}`
	assert.Equal(t, exp, llmutils.ToJSONIndent(rf))
}

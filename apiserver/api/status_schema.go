package api

var statusUpdateSchemaBytes = []byte(`
{
	"$schema": "http://json-schema.org/draft-07/schema#",

	"title": "StatusUpdate",
	"type": "object",
	"properties": {
		"status": {
			"type": "string",
			"minLength": 1,
			"maxLength": 50,
			"description": "New value for the record's status field"
		},
		"stop": {
			"type": "string",
			"maxLength": 250,
			"description": "Reason the job was asked to stop"
		},
		"expiry": {
			"type": "integer",
			"minimum": 1,
			"description": "Record time-to-live in seconds"
		},
		"fields": {
			"type": "object",
			"additionalProperties": {
				"type": "string"
			},
			"description": "Caller-defined fields to merge into the record"
		}
	},
	"additionalProperties": false
}
`)

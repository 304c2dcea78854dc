package yamlsource

// epochSchema describes the shape of an *.epoch.yaml document. Content rules
// (unique labels, dangling answers, durations) stay with the builders.
const epochSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "required": ["id", "title", "lessons"],
  "properties": {
    "id": {"type": "string", "minLength": 1},
    "title": {"type": "string", "minLength": 1},
    "description": {"type": "string"},
    "expected_lesson_count": {"type": "integer", "minimum": 0},
    "lessons": {"type": "array", "items": {"$ref": "#/definitions/lesson"}}
  },
  "definitions": {
    "lesson": {
      "type": "object",
      "additionalProperties": false,
      "required": ["id", "title", "estimated_minutes"],
      "properties": {
        "id": {"type": "string"},
        "title": {"type": "string"},
        "estimated_minutes": {"type": "integer"},
        "blocks": {"type": "array", "items": {"$ref": "#/definitions/block"}},
        "challenges": {"type": "array", "items": {"$ref": "#/definitions/challenge"}},
        "quiz": {"type": "array", "items": {"$ref": "#/definitions/quiz"}}
      }
    },
    "block": {
      "type": "object",
      "additionalProperties": false,
      "required": ["kind", "heading", "body"],
      "properties": {
        "kind": {"enum": ["theory", "example", "analogy", "key_point", "warning"]},
        "heading": {"type": "string"},
        "body": {"type": "string"}
      }
    },
    "challenge": {
      "type": "object",
      "additionalProperties": false,
      "required": ["id", "title", "description", "options", "correct_answer"],
      "properties": {
        "id": {"type": "string"},
        "title": {"type": "string"},
        "type": {"type": "string"},
        "description": {"type": "string"},
        "options": {"type": "array", "items": {"type": "string"}},
        "correct_answer": {"type": "string"}
      }
    },
    "quiz": {
      "type": "object",
      "additionalProperties": false,
      "required": ["prompt", "correct", "choices"],
      "properties": {
        "prompt": {"type": "string"},
        "correct": {"type": "string"},
        "explanation": {"type": "string"},
        "choices": {
          "type": "array",
          "items": {
            "type": "object",
            "additionalProperties": false,
            "required": ["key", "text"],
            "properties": {
              "key": {"type": "string"},
              "text": {"type": "string"}
            }
          }
        }
      }
    }
  }
}`

// Package docs holds the OpenAPI description served under /swagger/.
// Regenerate with `swag init -g cmd/app/main.go` after changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/farm": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"farm"
				],
				"summary": "Get the whole board",
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.BoardView"
						}
					}
				}
			}
		},
		"/farm/cell": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"farm"
				],
				"summary": "Get one cell",
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Column",
						"name": "x",
						"in": "query",
						"required": true
					},
					{
						"type": "integer",
						"description": "Row",
						"name": "y",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.CellView"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ActionResponse"
						}
					}
				}
			}
		},
		"/farm/plant": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"farm"
				],
				"summary": "Plant a seed",
				"description": "Plants one seed from the inventory in an empty cell. The plant must grow in the current season.",
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"parameters": [
					{
						"description": "Cell and plant name",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.PlantRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.ActionResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ActionResponse"
						}
					}
				}
			}
		},
		"/farm/harvest": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"farm"
				],
				"summary": "Harvest a ready crop",
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"parameters": [
					{
						"description": "Cell coordinates",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.CellRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.HarvestResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ActionResponse"
						}
					}
				}
			}
		},
		"/farm/upgrade": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"farm"
				],
				"summary": "Upgrade a tile",
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"parameters": [
					{
						"description": "Cell coordinates",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.CellRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.UpgradeResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ActionResponse"
						}
					}
				}
			}
		},
		"/farm/sell": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"farm"
				],
				"summary": "Sell every harvested crop",
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.SellResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/handler.ActionResponse"
						}
					}
				}
			}
		},
		"/inventory": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"inventory"
				],
				"summary": "Get the inventory",
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.InventoryView"
						}
					}
				}
			}
		},
		"/plants": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"catalog"
				],
				"summary": "List the plant catalog",
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"parameters": [
					{
						"type": "boolean",
						"description": "Only plants that grow this season",
						"name": "plantable",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/domain.PlantInfo"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ActionResponse"
						}
					}
				}
			}
		},
		"/season": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"catalog"
				],
				"summary": "Get the current season",
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.SeasonResponse"
						}
					}
				}
			}
		},
		"/snapshot": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"persistence"
				],
				"summary": "Export the farm",
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.SaveSnapshot"
						}
					}
				}
			},
			"put": {
				"produces": [
					"application/json"
				],
				"tags": [
					"persistence"
				],
				"summary": "Replace the farm with a snapshot",
				"description": "Nothing changes when the snapshot is rejected.",
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"parameters": [
					{
						"description": "Saved farm",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/domain.SaveSnapshot"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.ActionResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ActionResponse"
						}
					}
				}
			}
		},
		"/save": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"persistence"
				],
				"summary": "Save the farm to the store",
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.ActionResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/handler.ActionResponse"
						}
					}
				}
			}
		},
		"/load": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"persistence"
				],
				"summary": "Load the farm from the store",
				"description": "ok and found are false when nothing has been saved yet.",
				"security": [
					{
						"ApiKeyAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.LoadResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.ActionResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"handler.ActionResponse": {
			"type": "object",
			"properties": {
				"ok": {
					"type": "boolean"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"handler.PlantRequest": {
			"type": "object",
			"properties": {
				"x": {
					"type": "integer",
					"minimum": 0
				},
				"y": {
					"type": "integer",
					"minimum": 0
				},
				"plant": {
					"type": "string",
					"maxLength": 64
				}
			},
			"required": [
				"plant"
			]
		},
		"handler.CellRequest": {
			"type": "object",
			"properties": {
				"x": {
					"type": "integer",
					"minimum": 0
				},
				"y": {
					"type": "integer",
					"minimum": 0
				}
			}
		},
		"handler.HarvestResponse": {
			"type": "object",
			"properties": {
				"ok": {
					"type": "boolean"
				},
				"message": {
					"type": "string"
				},
				"result": {
					"$ref": "#/definitions/domain.HarvestResult"
				}
			}
		},
		"handler.UpgradeResponse": {
			"type": "object",
			"properties": {
				"ok": {
					"type": "boolean"
				},
				"message": {
					"type": "string"
				},
				"level": {
					"type": "integer"
				},
				"cost": {
					"type": "integer"
				},
				"next_cost": {
					"type": "integer"
				}
			}
		},
		"handler.SellResponse": {
			"type": "object",
			"properties": {
				"ok": {
					"type": "boolean"
				},
				"message": {
					"type": "string"
				},
				"total_credited": {
					"type": "integer"
				},
				"sold": {
					"type": "object",
					"additionalProperties": {
						"type": "integer"
					}
				},
				"gold": {
					"type": "integer"
				}
			}
		},
		"handler.LoadResponse": {
			"type": "object",
			"properties": {
				"ok": {
					"type": "boolean"
				},
				"message": {
					"type": "string"
				},
				"found": {
					"type": "boolean"
				}
			}
		},
		"handler.SeasonResponse": {
			"type": "object",
			"properties": {
				"season": {
					"type": "string",
					"enum": [
						"Spring",
						"Summer",
						"Autumn",
						"Winter"
					]
				}
			}
		},
		"domain.HarvestResult": {
			"type": "object",
			"properties": {
				"plant": {
					"type": "string"
				},
				"seeds": {
					"type": "integer"
				},
				"harvest_amount": {
					"type": "integer"
				}
			}
		},
		"domain.CellView": {
			"type": "object",
			"properties": {
				"x": {
					"type": "integer"
				},
				"y": {
					"type": "integer"
				},
				"plant": {
					"type": "string"
				},
				"progress": {
					"type": "number"
				},
				"level": {
					"type": "integer"
				},
				"remaining_ms": {
					"type": "integer"
				},
				"ready": {
					"type": "boolean"
				},
				"upgrade_cost": {
					"type": "integer"
				},
				"glyph": {
					"type": "string"
				},
				"info": {
					"type": "string"
				}
			}
		},
		"domain.BoardView": {
			"type": "object",
			"properties": {
				"season": {
					"type": "string",
					"enum": [
						"Spring",
						"Summer",
						"Autumn",
						"Winter"
					]
				},
				"gold": {
					"type": "integer"
				},
				"width": {
					"type": "integer"
				},
				"height": {
					"type": "integer"
				},
				"rows": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"domain.InventoryEntry": {
			"type": "object",
			"properties": {
				"plant": {
					"type": "string"
				},
				"harvested": {
					"type": "integer"
				},
				"seeds": {
					"type": "integer"
				}
			}
		},
		"domain.InventoryView": {
			"type": "object",
			"properties": {
				"gold": {
					"type": "integer"
				},
				"plants": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.InventoryEntry"
					}
				},
				"entries": {
					"type": "object",
					"additionalProperties": {
						"type": "integer"
					}
				}
			}
		},
		"domain.PlantInfo": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"growth_seconds": {
					"type": "integer"
				},
				"sell_price": {
					"type": "integer"
				},
				"seasons": {
					"type": "array",
					"items": {
						"type": "string",
						"enum": [
							"Spring",
							"Summer",
							"Autumn",
							"Winter"
						]
					}
				},
				"season_bonus": {
					"type": "object",
					"additionalProperties": {
						"type": "number"
					}
				},
				"plantable": {
					"type": "boolean"
				}
			}
		},
		"domain.SavedCell": {
			"type": "object",
			"properties": {
				"plant": {
					"type": "string"
				},
				"plantedTime": {
					"type": "integer"
				},
				"level": {
					"type": "integer"
				}
			}
		},
		"domain.SaveSnapshot": {
			"type": "object",
			"properties": {
				"version": {
					"type": "integer"
				},
				"farm": {
					"type": "array",
					"items": {
						"type": "array",
						"items": {
							"$ref": "#/definitions/domain.SavedCell"
						}
					}
				},
				"inventory": {
					"type": "object",
					"additionalProperties": {
						"type": "integer"
					}
				}
			}
		}
	},
	"securityDefinitions": {
		"ApiKeyAuth": {
			"type": "apiKey",
			"name": "X-API-Key",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "PlotFarm API",
	Description:      "Grid farming game: plant, harvest, upgrade tiles and sell crops.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

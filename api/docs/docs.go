// Package docs holds the Swagger 2 contract of the HTTP API, registered with
// swag so that the Swagger UI under /swagger can serve it.
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
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "security": [{"BearerAuth": []}],
    "paths": {
        "/booking/book": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["booking"],
                "summary": "Book a pickup",
                "parameters": [
                    {"type": "string", "description": "Replay key", "name": "Idempotency-Key", "in": "header"},
                    {"description": "Booking", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/BookOrderRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Response"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/Response"}}
                }
            }
        },
        "/booking/time-slots": {
            "get": {
                "produces": ["application/json"],
                "tags": ["booking"],
                "summary": "Pickup slots for a date",
                "parameters": [
                    {"type": "string", "format": "date", "description": "YYYY-MM-DD", "name": "date", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Response"}}
                }
            }
        },
        "/booking/orders/{orderId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["booking"],
                "summary": "Order details",
                "parameters": [
                    {"type": "integer", "format": "int64", "description": "Order id", "name": "orderId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Response"}}
                }
            }
        },
        "/orders": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Orders of the customer",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Response"}}
                }
            }
        },
        "/orders/{orderId}/cancel": {
            "post": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Cancel an order",
                "parameters": [
                    {"type": "integer", "format": "int64", "description": "Order id", "name": "orderId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Response"}}
                }
            }
        },
        "/orders/{orderId}/reschedule": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Move the pickup window",
                "parameters": [
                    {"type": "integer", "format": "int64", "description": "Order id", "name": "orderId", "in": "path", "required": true},
                    {"description": "New window", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RescheduleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Response"}}
                }
            }
        },
        "/orders/{orderId}/status": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Advance the order lifecycle",
                "parameters": [
                    {"type": "integer", "format": "int64", "description": "Order id", "name": "orderId", "in": "path", "required": true},
                    {"description": "Target status", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Response"}}
                }
            }
        },
        "/stores/orders": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stores"],
                "summary": "Orders of the operator's stores",
                "parameters": [
                    {"type": "string", "description": "Status filter or all", "name": "status", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Response"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["stores"],
                "summary": "Create a walk-in order at the counter",
                "parameters": [
                    {"type": "string", "description": "Replay key", "name": "Idempotency-Key", "in": "header"},
                    {"description": "Walk-in order", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/WalkInOrderRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Response"}}
                }
            }
        },
        "/stores/orders/{orderId}/items": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["stores"],
                "summary": "Edit order items",
                "parameters": [
                    {"type": "integer", "format": "int64", "description": "Order id", "name": "orderId", "in": "path", "required": true},
                    {"description": "Item edits", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateItemsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Response"}}
                }
            }
        },
        "/stores/transactions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stores"],
                "summary": "Revenue from delivered orders",
                "parameters": [
                    {"type": "string", "description": "30, 90 or 365 days", "name": "period", "in": "query"},
                    {"type": "string", "description": "YYYY-MM-DD, with endDate", "name": "startDate", "in": "query"},
                    {"type": "string", "description": "YYYY-MM-DD, inclusive", "name": "endDate", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Response"}}
                }
            }
        },
        "/settings/nearby-radius": {
            "get": {
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Read the store search radius",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Response"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Set the store search radius",
                "parameters": [
                    {"description": "Radius in km", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/NearbyRadiusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Response"}},
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Response"}}
                }
            }
        },
        "/notifications": {
            "get": {
                "produces": ["application/json"],
                "tags": ["notifications"],
                "summary": "Customer inbox",
                "parameters": [
                    {"type": "boolean", "description": "Only unread", "name": "unread", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Response"}}
                }
            }
        },
        "/notifications/{id}/read": {
            "put": {
                "produces": ["application/json"],
                "tags": ["notifications"],
                "summary": "Mark a notification as read",
                "parameters": [
                    {"type": "integer", "format": "int64", "description": "Notification id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Response"}}
                }
            }
        }
    },
    "definitions": {
        "Response": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {"type": "object"},
                "error": {"type": "string"}
            }
        },
        "ServiceSelection": {
            "type": "object",
            "required": ["serviceId"],
            "properties": {
                "serviceId": {"type": "integer", "format": "int64", "minimum": 1},
                "quantity": {"type": "integer", "minimum": 1}
            }
        },
        "BookOrderRequest": {
            "type": "object",
            "required": ["services", "slotStart", "slotEnd", "addressId"],
            "properties": {
                "services": {"type": "array", "items": {"$ref": "#/definitions/ServiceSelection"}},
                "slotStart": {"type": "string", "format": "date-time"},
                "slotEnd": {"type": "string", "format": "date-time"},
                "addressId": {"type": "integer", "format": "int64"},
                "notes": {"type": "string"},
                "isExpress": {"type": "boolean"}
            }
        },
        "WalkInOrderRequest": {
            "type": "object",
            "required": ["locationId", "customerId", "services"],
            "properties": {
                "locationId": {"type": "integer", "format": "int64"},
                "customerId": {"type": "integer", "format": "int64"},
                "addressId": {"type": "integer", "format": "int64"},
                "services": {"type": "array", "items": {"$ref": "#/definitions/ServiceSelection"}},
                "notes": {"type": "string"},
                "isExpress": {"type": "boolean"}
            }
        },
        "RescheduleRequest": {
            "type": "object",
            "required": ["pickupSlotStart", "pickupSlotEnd"],
            "properties": {
                "pickupSlotStart": {"type": "string", "format": "date-time"},
                "pickupSlotEnd": {"type": "string", "format": "date-time"}
            }
        },
        "UpdateStatusRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {
                "status": {
                    "type": "string",
                    "enum": ["pending", "confirmed", "picked_up", "processing", "ready_for_delivery", "out_for_delivery", "delivered", "cancelled"]
                },
                "notes": {"type": "string"}
            }
        },
        "ItemEdit": {
            "type": "object",
            "required": ["serviceId", "quantity"],
            "properties": {
                "serviceId": {"type": "integer", "format": "int64", "minimum": 1},
                "quantity": {"type": "integer", "minimum": 0},
                "totalAmount": {"type": "number", "minimum": 0}
            }
        },
        "UpdateItemsRequest": {
            "type": "object",
            "required": ["items"],
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/ItemEdit"}}
            }
        },
        "NearbyRadiusRequest": {
            "type": "object",
            "required": ["value"],
            "properties": {
                "value": {"type": "number"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Fulfillment API",
	Description:      "Pickup-and-delivery order fulfillment for local laundry stores.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

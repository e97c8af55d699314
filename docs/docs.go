// Package docs holds the OpenAPI document served at /swagger. It follows the
// layout swag init emits; keep it in step with the handler annotations when
// routes change.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "email": "support@example.com"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "description": "Returns the health status of the API, the active store backend, whether the store is reachable and whether the live snapshots have loaded",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.HealthResponse"}}
                }
            }
        },
        "/api/v1/servicos": {
            "get": {
                "security": [{"Bearer": []}],
                "description": "Returns the live snapshot of orders, newest data_entrada first. de/ate filter by entry day, both inclusive.",
                "produces": ["application/json"],
                "tags": ["servicos"],
                "summary": "List service orders",
                "parameters": [
                    {"type": "string", "description": "First day (YYYY-MM-DD)", "name": "de", "in": "query"},
                    {"type": "string", "description": "Last day (YYYY-MM-DD)", "name": "ate", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ServicosResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"Bearer": []}],
                "description": "Accepts JSON, or multipart/form-data with the order as JSON in ` + "`" + `dados` + "`" + ` and an optional image in ` + "`" + `foto` + "`" + ` (max 10 MB).\nThe order starts as PENDENTE; quantidade_total and valor_total_lote are derived from the size grid.",
                "consumes": ["application/json", "multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["servicos"],
                "summary": "Register a service order",
                "parameters": [
                    {"description": "Order (JSON requests)", "name": "request", "in": "body", "schema": {"$ref": "#/definitions/models.CreateServicoRequest"}},
                    {"type": "string", "description": "Order as JSON (multipart requests)", "name": "dados", "in": "formData"},
                    {"type": "file", "description": "Photo of the paper order sheet", "name": "foto", "in": "formData"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.ServicoView"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/api/v1/servicos/{id}": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["servicos"],
                "summary": "Get a service order",
                "parameters": [{"type": "string", "description": "Order ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ServicoView"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"Bearer": []}],
                "description": "Hard delete. The order photo is removed on a best-effort basis.",
                "tags": ["servicos"],
                "summary": "Delete a service order",
                "parameters": [{"type": "string", "description": "Order ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "patch": {
                "security": [{"Bearer": []}],
                "description": "Only the given fields change. Totals are recomputed from the resulting grid and unit price.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["servicos"],
                "summary": "Edit a service order",
                "parameters": [
                    {"type": "string", "description": "Order ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.UpdateServicoRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ServicoView"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/api/v1/servicos/{id}/avancar": {
            "post": {
                "security": [{"Bearer": []}],
                "description": "PENDENTE becomes EM_ANDAMENTO and EM_ANDAMENTO becomes CONCLUIDO. A finished order is rejected with 409; reopen it instead.",
                "produces": ["application/json"],
                "tags": ["servicos"],
                "summary": "Advance an order one step",
                "parameters": [{"type": "string", "description": "Order ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ServicoView"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/api/v1/servicos/{id}/reabrir": {
            "post": {
                "security": [{"Bearer": []}],
                "description": "Puts the order back to PENDENTE and clears data_conclusao.",
                "produces": ["application/json"],
                "tags": ["servicos"],
                "summary": "Reopen an order",
                "parameters": [{"type": "string", "description": "Order ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ServicoView"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/api/v1/servicos/{id}/status": {
            "post": {
                "security": [{"Bearer": []}],
                "description": "The target must be exactly one step after the current status (PENDENTE → EM_ANDAMENTO → CONCLUIDO). Anything else is rejected with 409 and nothing is written.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["servicos"],
                "summary": "Move an order to a status",
                "parameters": [
                    {"type": "string", "description": "Order ID", "name": "id", "in": "path", "required": true},
                    {"description": "Target status", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.AdvanceRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ServicoView"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/api/v1/pagamentos": {
            "get": {
                "security": [{"Bearer": []}],
                "description": "Returns the live snapshot of payments, newest work day first. de/ate filter by work day, both inclusive.",
                "produces": ["application/json"],
                "tags": ["pagamentos"],
                "summary": "List helper payments",
                "parameters": [
                    {"type": "string", "description": "First day (YYYY-MM-DD)", "name": "de", "in": "query"},
                    {"type": "string", "description": "Last day (YYYY-MM-DD)", "name": "ate", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PagamentosResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"Bearer": []}],
                "description": "data_trabalho defaults to today. Status defaults to PENDENTE.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pagamentos"],
                "summary": "Register a helper payment",
                "parameters": [{"description": "Payment", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CreatePagamentoRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.PagamentoView"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/api/v1/pagamentos/{id}": {
            "delete": {
                "security": [{"Bearer": []}],
                "tags": ["pagamentos"],
                "summary": "Delete a helper payment",
                "parameters": [{"type": "string", "description": "Payment ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/api/v1/pagamentos/{id}/alternar": {
            "post": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["pagamentos"],
                "summary": "Toggle a payment between PENDENTE and PAGO",
                "parameters": [{"type": "string", "description": "Payment ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PagamentoView"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/api/v1/dashboard": {
            "get": {
                "security": [{"Bearer": []}],
                "description": "Receivable (orders not yet CONCLUIDO), total production, helper expenses split by paid and pending, plus the three most recent orders.\nde/ate restrict orders by entry day and payments by work day.",
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Dashboard totals",
                "parameters": [
                    {"type": "string", "description": "First day (YYYY-MM-DD)", "name": "de", "in": "query"},
                    {"type": "string", "description": "Last day (YYYY-MM-DD)", "name": "ate", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.DashboardResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/api/v1/voz/extrair": {
            "post": {
                "security": [{"Bearer": []}],
                "description": "Sends the transcript to the language model and merges what it understood into the given form. Fields the model left empty keep their current value.\nSize labels outside PP, P, M, G, GG and EXG are listed in tamanhos_nao_reconhecidos and left out of the grid.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["voz"],
                "summary": "Fill the order form from a voice transcript",
                "parameters": [{"description": "Transcript and current form", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.VozRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.VozResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.AdvanceRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {"status": {"type": "string", "example": "EM_ANDAMENTO"}}
        },
        "models.Amount": {
            "type": "object",
            "properties": {
                "formatado": {"type": "string", "example": "R$ 100,00"},
                "valor": {"type": "string", "example": "100"}
            }
        },
        "models.CreatePagamentoRequest": {
            "type": "object",
            "properties": {
                "data_trabalho": {"type": "string", "example": "2024-03-05"},
                "nome_ajudante": {"type": "string", "example": "Maria"},
                "status": {"type": "string", "enum": ["PENDENTE", "PAGO"]},
                "valor_pago": {"type": "string", "example": "80,00"}
            }
        },
        "models.CreateServicoRequest": {
            "type": "object",
            "properties": {
                "cliente": {"type": "string", "example": "Loja Centro"},
                "data_chegada": {"type": "string", "example": "2024-03-05"},
                "fornecedor": {"type": "string", "example": "Confecções Silva"},
                "numero_op": {"type": "string", "example": "OP-1042"},
                "observacoes": {"type": "string"},
                "tamanhos": {"type": "object", "additionalProperties": {"type": "string"}},
                "tipo_peca": {"type": "string", "example": "Camiseta"},
                "tipo_tecido": {"type": "string", "example": "Malha"},
                "valor_unitario": {"type": "string", "example": "10,00"}
            }
        },
        "models.DashboardResponse": {
            "type": "object",
            "properties": {
                "despesas_ajudantes": {"$ref": "#/definitions/models.Amount"},
                "despesas_pagas": {"$ref": "#/definitions/models.Amount"},
                "despesas_pendentes": {"$ref": "#/definitions/models.Amount"},
                "producao_total": {"$ref": "#/definitions/models.Amount"},
                "recentes": {"type": "array", "items": {"$ref": "#/definitions/models.ServicoView"}},
                "total_a_receber": {"$ref": "#/definitions/models.Amount"}
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "models.HealthResponse": {
            "type": "object",
            "properties": {
                "backend": {"type": "string"},
                "online": {"type": "boolean"},
                "ready": {"type": "boolean"},
                "status": {"type": "string"}
            }
        },
        "models.PagamentoView": {
            "type": "object",
            "properties": {
                "data_trabalho": {"type": "string"},
                "id": {"type": "string"},
                "nome_ajudante": {"type": "string"},
                "status": {"type": "string", "enum": ["PENDENTE", "PAGO"]},
                "valor_formatado": {"type": "string", "example": "R$ 80,00"},
                "valor_pago": {"type": "string"}
            }
        },
        "models.PagamentosResponse": {
            "type": "object",
            "properties": {"pagamentos": {"type": "array", "items": {"$ref": "#/definitions/models.PagamentoView"}}}
        },
        "models.ServicoForm": {
            "type": "object",
            "properties": {
                "cliente": {"type": "string"},
                "fornecedor": {"type": "string"},
                "observacoes": {"type": "string"},
                "quantidade": {"type": "integer"},
                "tamanhos": {"type": "object", "additionalProperties": {"type": "integer"}},
                "tipo_peca": {"type": "string"},
                "tipo_tecido": {"type": "string"},
                "valor_unitario": {"type": "string", "example": "10,00"}
            }
        },
        "models.ServicoView": {
            "type": "object",
            "properties": {
                "cliente": {"type": "string"},
                "data_chegada": {"type": "string"},
                "data_conclusao": {"type": "string"},
                "data_entrada": {"type": "string"},
                "data_inicio": {"type": "string"},
                "detalhe_tamanhos": {"type": "string"},
                "fornecedor": {"type": "string"},
                "foto_op_url": {"type": "string"},
                "id": {"type": "string"},
                "numero_op": {"type": "string"},
                "observacoes": {"type": "string"},
                "quantidade_total": {"type": "integer"},
                "status": {"type": "string", "enum": ["PENDENTE", "EM_ANDAMENTO", "CONCLUIDO"]},
                "status_label": {"type": "string", "example": "Em Produção"},
                "tamanhos": {"type": "object", "additionalProperties": {"type": "integer"}},
                "tamanhos_exibicao": {"type": "string", "example": "2 P, 3 M"},
                "tipo_peca": {"type": "string"},
                "tipo_tecido": {"type": "string"},
                "valor_total_formatado": {"type": "string", "example": "R$ 50,00"},
                "valor_total_lote": {"type": "string"},
                "valor_unitario": {"type": "string"},
                "valor_unitario_formatado": {"type": "string", "example": "R$ 10,00"}
            }
        },
        "models.ServicosResponse": {
            "type": "object",
            "properties": {"servicos": {"type": "array", "items": {"$ref": "#/definitions/models.ServicoView"}}}
        },
        "models.UpdateServicoRequest": {
            "type": "object",
            "properties": {
                "cliente": {"type": "string"},
                "data_chegada": {"type": "string"},
                "fornecedor": {"type": "string"},
                "numero_op": {"type": "string"},
                "observacoes": {"type": "string"},
                "tamanhos": {"type": "object", "additionalProperties": {"type": "string"}},
                "tipo_peca": {"type": "string"},
                "tipo_tecido": {"type": "string"},
                "valor_unitario": {"type": "string"}
            }
        },
        "models.VozRequest": {
            "type": "object",
            "required": ["transcricao"],
            "properties": {
                "formulario": {"$ref": "#/definitions/models.ServicoForm"},
                "transcricao": {"type": "string", "example": "fornecedor Acme, duas camisetas P"}
            }
        },
        "models.VozResponse": {
            "type": "object",
            "properties": {
                "formulario": {"$ref": "#/definitions/models.ServicoForm"},
                "tamanhos_nao_reconhecidos": {"type": "array", "items": {"type": "string"}}
            }
        }
    },
    "securityDefinitions": {
        "Bearer": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Atelie Backend API",
	Description:      "Backend API for a garment workshop: service orders with their size grids and status lifecycle, helper payments, dashboard totals and voice-assisted order entry.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// Package docs 注册Swagger文档（/swagger/doc.json）
//
// 由handler上的注释生成：swag init -g cmd/api/main.go -o docs
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
        "/api/v1/books": {
            "get": {
                "produces": ["application/json"],
                "tags": ["图书"],
                "summary": "图书列表",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "页码(从1开始)", "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "description": "每页数量(<=100)", "name": "per_page", "in": "query"},
                    {"enum": ["none", "name", "price", "category"], "type": "string", "default": "none", "description": "排序字段", "name": "sort_by", "in": "query"},
                    {"enum": ["asc", "desc"], "type": "string", "default": "asc", "description": "排序方向", "name": "order", "in": "query"},
                    {"type": "string", "default": "none", "description": "主分类ID，none表示全部", "name": "category_id", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "参数错误", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "当前页没有图书", "schema": {"$ref": "#/definitions/response.Response"}},
                    "500": {"description": "系统错误", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["图书"],
                "summary": "创建图书",
                "parameters": [
                    {"type": "string", "description": "书名", "name": "title", "in": "formData", "required": true},
                    {"type": "string", "description": "作者", "name": "author", "in": "formData", "required": true},
                    {"type": "string", "description": "描述", "name": "description", "in": "formData"},
                    {"type": "string", "description": "标价", "name": "price", "in": "formData", "required": true},
                    {"type": "string", "description": "售价", "name": "final_price", "in": "formData", "required": true},
                    {"type": "string", "description": "主分类ID", "name": "main_category_id", "in": "formData", "required": true},
                    {"type": "string", "description": "子分类ID", "name": "sub_category_id", "in": "formData"},
                    {"type": "file", "description": "封面图", "name": "image", "in": "formData"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.BookResponse"}},
                    "400": {"description": "参数错误", "schema": {"$ref": "#/definitions/response.Response"}},
                    "401": {"description": "未认证", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "分类不存在", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/v1/books/count": {
            "get": {
                "produces": ["application/json"],
                "tags": ["图书"],
                "summary": "图书总数",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CountResponse"}}}
            }
        },
        "/api/v1/books/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["图书"],
                "summary": "图书详情",
                "parameters": [{"type": "string", "description": "图书ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.BookResponse"}},
                    "404": {"description": "图书不存在", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["图书"],
                "summary": "更新图书",
                "parameters": [
                    {"type": "string", "description": "图书ID", "name": "id", "in": "path", "required": true},
                    {"description": "需要修改的字段", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateBookRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.BookResponse"}},
                    "500": {"description": "更新失败(包括图书不存在)", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["图书"],
                "summary": "物理删除图书",
                "parameters": [{"type": "string", "description": "图书ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.BookResponse"}}}
            }
        },
        "/api/v1/books/{id}/soft-delete": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["图书"],
                "summary": "软删除图书",
                "parameters": [{"type": "string", "description": "图书ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.BookResponse"}}}
            }
        },
        "/api/v1/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["分类"],
                "summary": "分类列表",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "页码(从1开始)", "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "description": "每页数量(<=100)", "name": "per_page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "当前页没有分类", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["分类"],
                "summary": "创建分类",
                "parameters": [{"description": "分类信息", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateCategoryRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.CategoryResponse"}}}
            }
        },
        "/api/v1/categories/count": {
            "get": {
                "produces": ["application/json"],
                "tags": ["分类"],
                "summary": "分类总数",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CountResponse"}}}
            }
        },
        "/api/v1/categories/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["分类"],
                "summary": "分类详情",
                "parameters": [{"type": "string", "description": "分类ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CategoryResponse"}},
                    "404": {"description": "分类不存在", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["分类"],
                "summary": "更新分类",
                "parameters": [
                    {"type": "string", "description": "分类ID", "name": "id", "in": "path", "required": true},
                    {"description": "需要修改的字段", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateCategoryRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CategoryResponse"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["分类"],
                "summary": "物理删除分类",
                "parameters": [{"type": "string", "description": "分类ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CategoryResponse"}}}
            }
        },
        "/api/v1/categories/{id}/soft-delete": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["分类"],
                "summary": "软删除分类",
                "parameters": [{"type": "string", "description": "分类ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CategoryResponse"}}}
            }
        },
        "/api/v1/auth/revoke": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["认证"],
                "summary": "吊销Token",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.RevokeTokenResponse"}}}
            }
        }
    },
    "definitions": {
        "response.Response": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {}
            }
        },
        "dto.CountResponse": {
            "type": "object",
            "properties": {"count": {"type": "integer", "example": 42}}
        },
        "dto.RevokeTokenResponse": {
            "type": "object",
            "properties": {"revoked": {"type": "boolean", "example": true}}
        },
        "dto.CategoryResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string", "example": "科幻"},
                "description": {"type": "string"},
                "created_at": {"type": "string", "example": "2024-01-15 10:30:00"},
                "updated_at": {"type": "string", "example": "2024-01-15 10:30:00"},
                "deleted_at": {"type": "string"}
            }
        },
        "dto.CreateCategoryRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string", "maxLength": 100, "example": "科幻"},
                "description": {"type": "string", "maxLength": 2000}
            }
        },
        "dto.UpdateCategoryRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "maxLength": 100},
                "description": {"type": "string", "maxLength": 2000}
            }
        },
        "dto.BookResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string", "example": "三体"},
                "author": {"type": "string", "example": "刘慈欣"},
                "description": {"type": "string"},
                "price": {"type": "string", "example": "59.00"},
                "final_price": {"type": "string", "example": "45.50"},
                "image": {"type": "string", "example": "santi.png"},
                "image_url": {"type": "string", "example": "/uploads/santi.png"},
                "main_category_id": {"type": "string"},
                "sub_category_id": {"type": "string"},
                "main_category": {"$ref": "#/definitions/dto.CategoryResponse"},
                "sub_category": {"$ref": "#/definitions/dto.CategoryResponse"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"},
                "deleted_at": {"type": "string"}
            }
        },
        "dto.UpdateBookRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string", "maxLength": 200},
                "author": {"type": "string", "maxLength": 100},
                "description": {"type": "string", "maxLength": 5000},
                "price": {"type": "string", "example": "59.00"},
                "final_price": {"type": "string", "example": "39.90"},
                "image": {"type": "string"},
                "main_category_id": {"type": "string"},
                "sub_category_id": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Bearer <token>，由cmd/token签发",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "图书库存目录API",
	Description:      "图书与分类的增删改查、分页排序、软删除",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// Package swagger 注册 /swagger 使用的 OpenAPI 文档，接口变更时需同步修改 docTemplate
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/convert-bitcoin-key": {
            "post": {
                "description": "含汉字的输入按简体中文助记词解码，否则按 WIF 或 64 位 hex 私钥编码为 24 词助记词",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Converter"],
                "summary": "私钥 <-> 中文助记词",
                "parameters": [
                    {
                        "description": "WIF / hex 私钥或中文助记词",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/request.ConvertRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.KeyToMnemonic"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Failure"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Failure"}}
                }
            }
        },
        "/v1/translate": {
            "post": {
                "description": "自动识别助记词语言，用同一份熵重新编码为简体中文，并给出 m/44'/0'/0'/0/0 地址用于核对",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Converter"],
                "summary": "助记词转中文",
                "parameters": [
                    {
                        "description": "任意 BIP-39 语言的助记词",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/request.TranslateRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Translation"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Failure"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Get the current health status of the server",
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Check system health",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        }
    },
    "definitions": {
        "request.ConvertRequest": {
            "type": "object",
            "required": ["privateKey"],
            "properties": {
                "privateKey": {"type": "string", "maxLength": 1024}
            }
        },
        "request.TranslateRequest": {
            "type": "object",
            "required": ["mnemonic"],
            "properties": {
                "mnemonic": {"type": "string", "maxLength": 1024}
            }
        },
        "response.Failure": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "error": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "response.KeyToMnemonic": {
            "type": "object",
            "properties": {
                "bitcoinAddress": {"type": "string"},
                "chineseMnemonic": {"type": "string"},
                "entropyHex": {"type": "string"},
                "inputType": {"type": "string"},
                "privateKeyHex": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "response.MnemonicToKey": {
            "type": "object",
            "properties": {
                "bitcoinAddress": {"type": "string"},
                "entropyHex": {"type": "string"},
                "inputType": {"type": "string"},
                "mnemonic": {"type": "string"},
                "privateKey": {"type": "string"},
                "privateKeyHex": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "response.Response": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "data": {},
                "msg": {"type": "string"}
            }
        },
        "response.Translation": {
            "type": "object",
            "properties": {
                "bitcoinAddress": {"type": "string"},
                "chineseMnemonic": {"type": "string"},
                "derivationPath": {"type": "string"},
                "detected": {"type": "boolean"},
                "entropyHex": {"type": "string"},
                "seedHex": {"type": "string"},
                "sourceWordlist": {"type": "string"},
                "success": {"type": "boolean"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Chinese Mnemonic Converter API",
	Description:      "Bitcoin private key <-> Simplified Chinese BIP-39 mnemonic",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

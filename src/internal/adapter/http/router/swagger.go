package router

import (
	"fmt"
	"net/http"
)

func registerSwaggerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})

	mux.HandleFunc("/swagger/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, swaggerHTML, "/swagger/openapi.json")
	})

	mux.HandleFunc("/swagger/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(openAPI))
	})
}

const swaggerHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <title>Bank Account API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = function() {
      window.ui = SwaggerUIBundle({
        url: "%s",
        dom_id: "#swagger-ui"
      });
    };
  </script>
</body>
</html>`

const openAPI = `{
  "openapi": "3.0.3",
  "info": {
    "title": "Bank Account API",
    "version": "1.0.0"
  },
  "paths": {
    "/accounts": {
      "post": {
        "summary": "Create account",
        "security": [{ "BasicAuth": [] }],
        "requestBody": {
          "required": true,
          "content": { "application/json": { "schema": { "$ref": "#/components/schemas/CreateAccountRequest" } } }
        },
        "responses": {
          "201": { "description": "Account created" },
          "400": { "description": "Validation failed" },
          "409": { "description": "Account already exists" }
        }
      },
      "get": {
        "summary": "Get account",
        "security": [{ "BasicAuth": [] }],
        "parameters": [
          { "name": "accountNumber", "in": "query", "required": true, "schema": { "type": "string" } }
        ],
        "responses": {
          "200": { "description": "Account fetched" },
          "404": { "description": "Account not found" }
        }
      }
    },
    "/accounts/deposit": {
      "post": {
        "summary": "Deposit funds",
        "security": [{ "BasicAuth": [] }],
        "requestBody": {
          "required": true,
          "content": { "application/json": { "schema": { "$ref": "#/components/schemas/AmountRequest" } } }
        },
        "responses": {
          "200": { "description": "Deposit accepted; confirmation code starts with D-" },
          "400": { "description": "Validation failed" },
          "404": { "description": "Account not found" }
        }
      }
    },
    "/accounts/withdraw": {
      "post": {
        "summary": "Withdraw funds",
        "description": "Insufficient funds is not an error: the response status is REJECTED and the confirmation code starts with X-.",
        "security": [{ "BasicAuth": [] }],
        "requestBody": {
          "required": true,
          "content": { "application/json": { "schema": { "$ref": "#/components/schemas/AmountRequest" } } }
        },
        "responses": {
          "200": { "description": "Withdrawal accepted (W-) or rejected (X-)" },
          "400": { "description": "Validation failed" },
          "404": { "description": "Account not found" }
        }
      }
    },
    "/accounts/pay-interest": {
      "post": {
        "summary": "Pay interest at the shared rate",
        "security": [{ "BasicAuth": [] }],
        "requestBody": {
          "required": true,
          "content": { "application/json": { "schema": { "type": "object", "properties": { "accountNumber": { "type": "string" } } } } }
        },
        "responses": {
          "200": { "description": "Interest paid; confirmation code starts with I-" },
          "404": { "description": "Account not found" }
        }
      }
    },
    "/interest-rate": {
      "get": {
        "summary": "Get the shared interest rate (percentage)",
        "security": [{ "BasicAuth": [] }],
        "responses": { "200": { "description": "Interest rate fetched" } }
      },
      "put": {
        "summary": "Replace the shared interest rate",
        "security": [{ "BasicAuth": [] }],
        "requestBody": {
          "required": true,
          "content": { "application/json": { "schema": { "type": "object", "properties": { "rate": { "type": "string", "example": "0.5" } } } } }
        },
        "responses": {
          "200": { "description": "Interest rate updated" },
          "400": { "description": "Validation failed" }
        }
      }
    },
    "/confirmations/decode": {
      "post": {
        "summary": "Decode a confirmation code",
        "security": [{ "BasicAuth": [] }],
        "requestBody": {
          "required": true,
          "content": { "application/json": { "schema": { "$ref": "#/components/schemas/DecodeConfirmationRequest" } } }
        },
        "responses": {
          "200": { "description": "Confirmation decoded" },
          "400": { "description": "Invalid confirmation code" }
        }
      }
    }
  },
  "components": {
    "securitySchemes": {
      "BasicAuth": { "type": "http", "scheme": "basic" }
    },
    "schemas": {
      "TimeZone": {
        "type": "object",
        "properties": {
          "name": { "type": "string", "example": "MST" },
          "offsetHours": { "type": "integer", "example": -7 },
          "offsetMinutes": { "type": "integer", "example": 0 }
        }
      },
      "CreateAccountRequest": {
        "type": "object",
        "required": ["firstName", "lastName"],
        "properties": {
          "accountNumber": { "type": "string", "example": "A100" },
          "firstName": { "type": "string" },
          "lastName": { "type": "string" },
          "timezone": { "$ref": "#/components/schemas/TimeZone" },
          "initialBalance": { "type": "string", "example": "100.00" }
        }
      },
      "AmountRequest": {
        "type": "object",
        "required": ["accountNumber", "amount"],
        "properties": {
          "accountNumber": { "type": "string", "example": "A100" },
          "amount": { "type": "string", "example": "20.00" }
        }
      },
      "DecodeConfirmationRequest": {
        "type": "object",
        "required": ["confirmationCode"],
        "properties": {
          "confirmationCode": { "type": "string", "example": "D-A100-20190325224918-101" },
          "timezone": { "$ref": "#/components/schemas/TimeZone" }
        }
      }
    }
  }
}`

// File: handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Analysis endpoints. Only the one matching the deployment's mode is routed.
	ZodiacAnalysisHandler  gin.HandlerFunc
	SectionAnalysisHandler gin.HandlerFunc
}

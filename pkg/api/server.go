// Package api provides the REST API server for the Mcoded7 codec
package api

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ZILtoid1991/midi2/pkg/mcoded7"
	"github.com/ZILtoid1991/midi2/pkg/sysex"
)

// @title Mcoded7 API
// @version 1.0
// @description API for converting binary data to and from the Mcoded7 7-bit-clean representation
// @host localhost:8080
// @BasePath /api/v1

// StartServer starts the API server on the specified port
func StartServer(port int) error {
	r := gin.Default()

	// CORS middleware
	r.Use(corsMiddleware())

	// Health check
	r.GET("/health", healthCheck)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.POST("/encode", handleEncode)
		v1.POST("/decode", handleDecode)
		v1.GET("/info", codecInfo)
	}

	// Swagger docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r.Run(fmt.Sprintf(":%d", port))
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// healthCheck godoc
// @Summary Health check endpoint
// @Description Returns the health status of the API
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "mcoded7",
	})
}

// codecInfo godoc
// @Summary Codec parameters
// @Description Returns the Mcoded7 block sizes and status vocabulary
// @Tags info
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/info [get]
func codecInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"raw_block_size":     mcoded7.RawBlockSize,
		"encoded_block_size": mcoded7.EncodedBlockSize,
		"expansion_ratio":    fmt.Sprintf("%d:%d", mcoded7.RawBlockSize, mcoded7.EncodedBlockSize),
		"statuses": []string{
			mcoded7.AllInputConsumed.String(),
			mcoded7.NeedsMoreOutput.String(),
			mcoded7.AlreadyFinalized.String(),
			mcoded7.Finished.String(),
		},
	})
}

// handleEncode godoc
// @Summary Encode binary data to Mcoded7
// @Description Upload a binary file and receive its 7-bit-clean Mcoded7 encoding
// @Tags convert
// @Accept multipart/form-data
// @Produce application/octet-stream
// @Param file formData file true "Binary file to encode"
// @Param framed query bool false "Wrap the result in a SysEx F0..F7 envelope"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Router /api/v1/encode [post]
func handleEncode(c *gin.Context) {
	handleTranscode(c, true)
}

// handleDecode godoc
// @Summary Decode Mcoded7 data back to binary
// @Description Upload an Mcoded7 file and receive the decoded binary data
// @Tags convert
// @Accept multipart/form-data
// @Produce application/octet-stream
// @Param file formData file true "Mcoded7 file to decode"
// @Param framed query bool false "Treat the upload as a SysEx F0..F7 frame"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Router /api/v1/decode [post]
func handleDecode(c *gin.Context) {
	handleTranscode(c, false)
}

func handleTranscode(c *gin.Context, encode bool) {
	// Get uploaded file
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer func() { _ = file.Close() }()

	// Read file content
	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return
	}

	framed := c.DefaultQuery("framed", "false") == "true"

	// Perform conversion
	var result []byte
	var outputExt string

	switch {
	case encode && framed:
		result, err = sysex.EncodeFrame(data)
		outputExt = ".syx"
	case encode:
		result, err = sysex.EncodeMessage(data)
		outputExt = ".mc7"
	case framed:
		result, err = sysex.DecodeFrame(data)
		outputExt = ".bin"
	default:
		result, err = sysex.DecodeMessage(data)
		outputExt = ".bin"
	}

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Generate output filename
	outputName := header.Filename
	if idx := strings.LastIndex(outputName, "."); idx > 0 {
		outputName = outputName[:idx] + outputExt
	} else if outputName != "" {
		outputName = outputName + outputExt
	} else {
		outputName = "converted" + outputExt
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", outputName))
	c.Data(http.StatusOK, "application/octet-stream", result)
}

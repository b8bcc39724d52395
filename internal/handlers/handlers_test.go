// internal/handlers/handlers_test.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/storymint/storymint-backend/internal/aiagent"
	"github.com/storymint/storymint-backend/internal/config"
	"github.com/storymint/storymint-backend/internal/services"
	"github.com/storymint/storymint-backend/internal/store"
)

// scriptedGenerator stands in for the text generation providers.
type scriptedGenerator struct {
	response string
	err      error
}

func (g *scriptedGenerator) Generate(ctx context.Context, prompt string, jsonMode bool) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	return g.response, nil
}

type HandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	db        *store.Store
	generator *scriptedGenerator
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := &config.Config{
		Environment: "test",
		Blockchain:  config.BlockchainConfig{Network: "aeneid"},
		Royalty:     config.RoyaltyConfig{CreatorShare: 0.7, PlatformFee: 0.1},
	}

	suite.db = store.New()
	suite.generator = &scriptedGenerator{response: "{}"}

	agent := aiagent.NewAgent(suite.generator, logger)
	registryService := services.NewRegistryService(cfg, logger)
	storageService := services.NewStorageService(cfg, logger)
	creatorService := services.NewCreatorService(suite.db, logger)
	assetService := services.NewAssetService(suite.db, registryService, logger)
	licensingService := services.NewLicensingService(suite.db, agent, registryService, logger)

	aiHandler := NewAIHandler(agent)
	creatorHandler := NewCreatorHandler(creatorService)
	ipAssetHandler := NewIPAssetHandler(assetService)
	licensingHandler := NewLicensingHandler(licensingService)
	uploadHandler := NewUploadHandler(storageService)
	royaltyHandler := NewRoyaltyHandler(agent, cfg)

	suite.router = gin.New()
	v1 := suite.router.Group("/v1")
	{
		v1.POST("/ai/analyze", aiHandler.AnalyzeContent)
		v1.POST("/ai/negotiate", aiHandler.NegotiateTerms)
		v1.POST("/ai/contract", aiHandler.GenerateContract)

		v1.GET("/creators", creatorHandler.GetCreatorByAddress)
		v1.POST("/creators", creatorHandler.CreateCreator)
		v1.GET("/creators/:address", creatorHandler.GetCreator)
		v1.GET("/creators/:address/assets", creatorHandler.GetCreatorAssets)
		v1.GET("/creators/:address/requests", creatorHandler.GetCreatorRequests)
		v1.GET("/creators/:address/agreements", creatorHandler.GetCreatorAgreements)

		v1.GET("/ip-assets", ipAssetHandler.GetIPAssets)
		v1.POST("/ip-assets", ipAssetHandler.CreateIPAsset)
		v1.GET("/ip-assets/:id", ipAssetHandler.GetIPAsset)

		v1.POST("/licensing", licensingHandler.ProcessLicensing)
		v1.POST("/licensing/requests", licensingHandler.CreateRequest)
		v1.POST("/licensing/agreements", licensingHandler.CreateAgreement)

		v1.POST("/royalties/split", royaltyHandler.SplitRoyalties)
		v1.POST("/upload", uploadHandler.Upload)
	}
}

func (suite *HandlerTestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != nil {
		jsonData, _ := json.Marshal(body)
		reader = bytes.NewBuffer(jsonData)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	return response
}

func (suite *HandlerTestSuite) TestAnalyzeFallsBackOnProviderFailure() {
	suite.generator.err = assert.AnError

	w := suite.request("POST", "/v1/ai/analyze", map[string]interface{}{
		"fileType": "image/png",
		"fileName": "screenshot.png",
		"fileSize": 5000000,
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	response := suite.decode(w)
	assert.Equal(suite.T(), "low", response["quality"])
	assert.Equal(suite.T(), 20.0, response["estimatedValue"])
}

func (suite *HandlerTestSuite) TestNegotiateReturnsBareResult() {
	suite.generator.err = assert.AnError

	w := suite.request("POST", "/v1/ai/negotiate", map[string]interface{}{
		"creatorTerms": map[string]interface{}{
			"usageRights": "commercial",
			"price":       100,
			"duration":    365,
		},
		"licenseeRequest": map[string]interface{}{"price": 50},
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	response := suite.decode(w)
	assert.Equal(suite.T(), false, response["accepted"])
	finalTerms := response["finalTerms"].(map[string]interface{})
	assert.Equal(suite.T(), 100.0, finalTerms["price"])
}

func (suite *HandlerTestSuite) TestContractEndpoint() {
	suite.generator.response = "FULL CONTRACT TEXT"

	w := suite.request("POST", "/v1/ai/contract", map[string]interface{}{
		"terms":    map[string]interface{}{"usageRights": "commercial", "price": 100},
		"language": "en",
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	response := suite.decode(w)
	assert.Equal(suite.T(), "FULL CONTRACT TEXT", response["contract"])
}

func (suite *HandlerTestSuite) TestGetCreatorRequiresAddress() {
	w := suite.request("GET", "/v1/creators", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	response := suite.decode(w)
	assert.NotEmpty(suite.T(), response["error"])
}

func (suite *HandlerTestSuite) TestGetUnknownCreatorReturnsNull() {
	w := suite.request("GET", "/v1/creators?address=0xnobody", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	response := suite.decode(w)
	value, present := response["creator"]
	assert.True(suite.T(), present)
	assert.Nil(suite.T(), value)
}

func (suite *HandlerTestSuite) TestCreateAndLookupCreator() {
	w := suite.request("POST", "/v1/creators", map[string]interface{}{
		"walletAddress": "0xAbC123",
		"name":          "Asha",
	})
	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	// Lookup is case-insensitive on the wallet address
	w = suite.request("GET", "/v1/creators?address=0xabc123", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	response := suite.decode(w)
	creator := response["creator"].(map[string]interface{})
	assert.Equal(suite.T(), "Asha", creator["name"])
	assert.Equal(suite.T(), "en", creator["language"])
	assert.NotEmpty(suite.T(), creator["id"])
}

func (suite *HandlerTestSuite) TestCreateCreatorValidation() {
	w := suite.request("POST", "/v1/creators", map[string]interface{}{"name": "No Wallet"})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestCreateAssetAutoCreatesPlaceholderCreator() {
	w := suite.request("POST", "/v1/ip-assets", map[string]interface{}{
		"creatorId": "0xnewbie",
		"title":     "Desert Dunes",
		"fileType":  "image/jpeg",
	})
	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	response := suite.decode(w)
	assert.Equal(suite.T(), true, response["success"])
	asset := response["asset"].(map[string]interface{})
	assert.NotEmpty(suite.T(), asset["tokenId"])

	w = suite.request("GET", "/v1/creators?address=0xnewbie", nil)
	creator := suite.decode(w)["creator"].(map[string]interface{})
	assert.Equal(suite.T(), "Unknown Creator", creator["name"])

	w = suite.request("GET", "/v1/creators/0xnewbie/assets", nil)
	assets := suite.decode(w)["assets"].([]interface{})
	assert.Len(suite.T(), assets, 1)
}

func (suite *HandlerTestSuite) TestGetMissingAssetReturns404() {
	w := suite.request("GET", "/v1/ip-assets/missing", nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	response := suite.decode(w)
	assert.Equal(suite.T(), "Asset not found", response["error"])
}

func (suite *HandlerTestSuite) TestProcessLicensingMissingAsset() {
	w := suite.request("POST", "/v1/licensing", map[string]interface{}{
		"ipAssetId":       "missing",
		"licenseeAddress": "0xdef",
	})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	response := suite.decode(w)
	assert.Equal(suite.T(), "Asset not found", response["error"])
}

func (suite *HandlerTestSuite) TestProcessLicensingAcceptedCreatesRequest() {
	w := suite.request("POST", "/v1/ip-assets", map[string]interface{}{
		"id":        "a1",
		"creatorId": "c1",
		"title":     "Sunset",
		"licensingTerms": map[string]interface{}{
			"usageRights": "commercial",
			"price":       100,
			"duration":    365,
		},
	})
	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	suite.generator.response = `{"accepted": true, "finalTerms": {"price": 90}, "reasoning": "Close enough"}`

	w = suite.request("POST", "/v1/licensing", map[string]interface{}{
		"ipAssetId":       "a1",
		"licenseeAddress": "0xdef",
		"requestedTerms":  map[string]interface{}{"price": 90},
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	response := suite.decode(w)
	assert.Equal(suite.T(), true, response["success"])

	request := response["request"].(map[string]interface{})
	assert.Equal(suite.T(), "accepted", request["status"])
	assert.Equal(suite.T(), "a1", request["ipAssetId"])
	history := request["negotiationHistory"].([]interface{})
	assert.Len(suite.T(), history, 1)

	negotiation := response["negotiation"].(map[string]interface{})
	assert.Equal(suite.T(), "Close enough", negotiation["reasoning"])
}

func (suite *HandlerTestSuite) TestProcessLicensingRejectedDoesNotPersist() {
	suite.request("POST", "/v1/ip-assets", map[string]interface{}{
		"id":        "a1",
		"creatorId": "c1",
		"title":     "Sunset",
	})

	suite.generator.response = `{"accepted": false, "reasoning": "Too low"}`

	w := suite.request("POST", "/v1/licensing", map[string]interface{}{
		"ipAssetId":       "a1",
		"licenseeAddress": "0xdef",
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	response := suite.decode(w)
	assert.Equal(suite.T(), false, response["success"])
	_, present := response["request"]
	assert.False(suite.T(), present)

	w = suite.request("GET", "/v1/creators/c1/requests", nil)
	requests := suite.decode(w)["requests"].([]interface{})
	assert.Empty(suite.T(), requests)
}

func (suite *HandlerTestSuite) TestCreateAgreementBackfillsContractHash() {
	w := suite.request("POST", "/v1/licensing/agreements", map[string]interface{}{
		"ipAssetId":       "a1",
		"creatorAddress":  "0xabc",
		"licenseeAddress": "0xdef",
		"contractText":    "AGREEMENT BODY",
		"terms":           map[string]interface{}{"duration": 30},
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	response := suite.decode(w)
	agreement := response["agreement"].(map[string]interface{})
	assert.Equal(suite.T(), "active", agreement["status"])
	assert.NotEmpty(suite.T(), agreement["contractHash"])
	assert.Greater(suite.T(), agreement["expiresAt"], agreement["createdAt"])
}

func (suite *HandlerTestSuite) TestRoyaltySplitUsesConfiguredDefaults() {
	w := suite.request("POST", "/v1/royalties/split", map[string]interface{}{
		"totalRevenue": 1000,
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	response := suite.decode(w)
	assert.Equal(suite.T(), 100.0, response["platform"])
	assert.Equal(suite.T(), 630.0, response["creator"])
	assert.Equal(suite.T(), 270.0, response["licensee"])
}

func (suite *HandlerTestSuite) TestUploadRequiresFile() {
	w := suite.request("POST", "/v1/upload", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestUploadReturnsPlaceholderReference() {
	var body bytes.Buffer
	writer := multipartWriter(&body, "song.mp3", []byte("audio-bytes"))

	req, _ := http.NewRequest("POST", "/v1/upload", &body)
	req.Header.Set("Content-Type", writer)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	response := suite.decode(w)
	assert.Equal(suite.T(), true, response["success"])
	assert.Contains(suite.T(), response["fileUrl"], "ipfs://mock-hash-")
	assert.Equal(suite.T(), "song.mp3", response["fileName"])
}

// multipartWriter fills body with a single-file multipart form and
// returns the content type header value.
func multipartWriter(body *bytes.Buffer, filename string, content []byte) string {
	writer := multipart.NewWriter(body)
	part, _ := writer.CreateFormFile("file", filename)
	part.Write(content)
	writer.Close()
	return writer.FormDataContentType()
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

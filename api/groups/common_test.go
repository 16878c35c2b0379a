package groups_test

import (
	"encoding/json"
	"io"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-tax-ledger-go/api/shared"
	"github.com/multiversx/mx-chain-tax-ledger-go/config"
)

type generalResponse struct {
	Data  interface{} `json:"data"`
	Error string      `json:"error"`
	Code  string      `json:"code"`
}

func init() {
	gin.SetMode(gin.TestMode)
}

func startWebServer(group shared.GroupHandler, path string, apiConfig config.ApiRoutesConfig) *gin.Engine {
	ws := gin.New()
	ws.Use(cors.Default())
	routes := ws.Group(path)
	group.RegisterRoutes(routes, apiConfig)

	return ws
}

func loadResponse(rsp io.Reader, destination interface{}) {
	jsonParser := json.NewDecoder(rsp)
	err := jsonParser.Decode(destination)
	if err != nil {
		panic(err)
	}
}

func openRoutesConfig(group string, paths ...string) config.ApiRoutesConfig {
	routes := make([]config.RouteConfig, 0, len(paths))
	for _, path := range paths {
		routes = append(routes, config.RouteConfig{Name: path, Open: true})
	}

	return config.ApiRoutesConfig{
		APIPackages: map[string]config.APIPackageConfig{
			group: {Routes: routes},
		},
	}
}

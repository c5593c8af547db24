package main

import (
	"context"
	"os"
	"sentimentfactor/api"
	"sentimentfactor/cmd"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"go.uber.org/zap"
)

type lambdaHandler struct {
	apiHandler *api.ApiHandler
}

func (m lambdaHandler) Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	engine := m.apiHandler.InitializeRouterEngine()
	ginLambda := ginadapter.New(engine)

	zap.S().Infow("lambda request", "method", req.HTTPMethod, "path", req.Path)

	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	deps, err := cmd.InitializeDependencies(os.Getenv("SF_CONFIG"))
	if err != nil {
		zap.S().Fatalw("failed to initialize dependencies", "error", err.Error())
	}
	defer cmd.CloseDependencies(deps)

	handler := lambdaHandler{
		apiHandler: deps.ApiHandler,
	}
	lambda.Start(handler.Handler)
}

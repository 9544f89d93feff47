package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	brtypes "github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	smithy "github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
)

// BedrockConfig configures the Bedrock-backed client. Region and model id
// come from configuration, never code.
type BedrockConfig struct {
	Region         string
	DefaultModelID string
	MaxTokens      int32
	Temperature    float32
}

// converseAPI is the subset of *bedrockruntime.Client the adapter needs.
// Matching the real client's method set keeps tests mock-friendly.
type converseAPI interface {
	Converse(ctx context.Context, params *bedrockruntime.ConverseInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.ConverseOutput, error)
}

// BedrockClient implements Client on top of the Bedrock Converse API.
type BedrockClient struct {
	api converseAPI
	cfg BedrockConfig
}

// NewBedrockClient resolves AWS credentials for the configured region and
// returns a ready client. The connection is lazy; the first Generate call
// performs the actual dial.
func NewBedrockClient(ctx context.Context, cfg BedrockConfig) (*BedrockClient, error) {
	if cfg.DefaultModelID == "" {
		return nil, errors.New("bedrock: default model id is required")
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	return &BedrockClient{
		api: bedrockruntime.NewFromConfig(awsCfg),
		cfg: cfg,
	}, nil
}

// NewBedrockClientWithAPI wires an explicit Converse implementation (tests).
func NewBedrockClientWithAPI(api converseAPI, cfg BedrockConfig) *BedrockClient {
	return &BedrockClient{api: api, cfg: cfg}
}

// Generate performs one Converse round trip and flattens the response text.
func (c *BedrockClient) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	modelID := input.ModelID
	if modelID == "" {
		modelID = c.cfg.DefaultModelID
	}

	req := &bedrockruntime.ConverseInput{
		ModelId: aws.String(modelID),
		Messages: []brtypes.Message{
			{
				Role: brtypes.ConversationRoleUser,
				Content: []brtypes.ContentBlock{
					&brtypes.ContentBlockMemberText{Value: input.UserPrompt},
				},
			},
		},
		InferenceConfig: c.inferenceConfig(input),
	}
	if input.SystemPrompt != "" {
		req.System = []brtypes.SystemContentBlock{
			&brtypes.SystemContentBlockMemberText{Value: input.SystemPrompt},
		}
	}

	output, err := c.api.Converse(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("bedrock converse (%s): %w", modelID, err)
	}

	out := &GenerateOutput{ModelID: modelID}
	if msg, ok := output.Output.(*brtypes.ConverseOutputMemberMessage); ok {
		for _, block := range msg.Value.Content {
			if text, ok := block.(*brtypes.ContentBlockMemberText); ok {
				out.Text += text.Value
			}
		}
	}
	if output.Usage != nil {
		if output.Usage.InputTokens != nil {
			out.InputTokens = *output.Usage.InputTokens
		}
		if output.Usage.OutputTokens != nil {
			out.OutputTokens = *output.Usage.OutputTokens
		}
	}
	return out, nil
}

func (c *BedrockClient) inferenceConfig(input *GenerateInput) *brtypes.InferenceConfiguration {
	cfg := &brtypes.InferenceConfiguration{}
	maxTokens := input.MaxTokens
	if maxTokens <= 0 {
		maxTokens = c.cfg.MaxTokens
	}
	if maxTokens > 0 {
		cfg.MaxTokens = aws.Int32(maxTokens)
	}
	temp := input.Temperature
	if temp < 0 {
		temp = c.cfg.Temperature
	}
	cfg.Temperature = aws.Float32(temp)
	if len(input.StopSequences) > 0 {
		cfg.StopSequences = input.StopSequences
	}
	return cfg
}

// IsThrottle reports whether err is a provider throttling signal.
func IsThrottle(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "ThrottlingException", "TooManyRequestsException", "ServiceQuotaExceededException":
			return true
		}
	}
	return false
}

// IsServerFault reports whether err is a transient provider-side failure
// (HTTP 5xx or model unavailability).
func IsServerFault(err error) bool {
	var respErr *smithyhttp.ResponseError
	if errors.As(err, &respErr) && respErr.HTTPStatusCode() >= 500 {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "ModelNotReadyException", "ServiceUnavailableException", "InternalServerException":
			return true
		}
	}
	return false
}

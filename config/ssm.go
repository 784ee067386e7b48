package config

import (
	"context"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/rs/zerolog/log"
)

// LoadSSMOverlay fetches parameters under SSM_PARAMETER_PREFIX from AWS
// Parameter Store and overlays them onto the config map. A parameter named
// `<prefix>/DATABASE_URL` overrides the DATABASE_URL env var. Secrets live in
// Parameter Store in deployed environments; locally the prefix is unset and
// this is a no-op.
func LoadSSMOverlay(ctx context.Context, cfg map[string]string) map[string]string {
	prefix := GetString(cfg, "SSM_PARAMETER_PREFIX", "")
	if prefix == "" {
		return cfg
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("could not load AWS config, skipping SSM parameter overlay")
		return cfg
	}

	client := ssm.NewFromConfig(awsCfg)

	var nextToken *string
	loaded := 0
	for {
		out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
			Path:           aws.String(prefix),
			Recursive:      aws.Bool(true),
			WithDecryption: aws.Bool(true),
			NextToken:      nextToken,
		})
		if err != nil {
			log.Warn().Err(err).Str("prefix", prefix).Msg("SSM parameter fetch failed, continuing with env config")
			return cfg
		}

		for _, p := range out.Parameters {
			if p.Name == nil || p.Value == nil {
				continue
			}
			key := strings.ToUpper(path.Base(*p.Name))
			cfg[key] = *p.Value
			loaded++
		}

		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}

	log.Info().Int("parameters", loaded).Str("prefix", prefix).Msg("loaded SSM parameter overlay")
	return cfg
}

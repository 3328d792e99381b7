package local

import (
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/op/go-logging"

	"scmock/common"
	"scmock/tagging"
)

var log = logging.MustGetLogger("local")

// InitializeContext loads manager objects
func InitializeContext(ctx *common.Context) error {
	sessOptions := session.Options{SharedConfigState: session.SharedConfigEnable}
	if ctx.Config.Region != common.Empty {
		sessOptions.Config = aws.Config{Region: aws.String(ctx.Config.Region)}
	}
	log.Debugf("Creating AWS session region:%s", ctx.Config.Region)
	sess, err := session.NewSessionWithOptions(sessOptions)
	if err != nil {
		return err
	}

	ctx.StackProvisioner = newStackProvisioner()
	ctx.TemplateFetcher = &templateFetcher{
		s3API:  s3.New(sess),
		client: &http.Client{Timeout: 30 * time.Second},
	}
	ctx.TagManager = tagging.NewService()

	return nil
}

package aws

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

func GetS3Client() *s3.Client {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Printf("Could not load default config: %s\n", err.Error())
		return nil
	}
	svc := s3.NewFromConfig(cfg)
	return svc
}

// S3PresignImage returns a time-limited GET URL for a cabin gallery object.
// Returns "" when presigning is unavailable so callers can fall back to the
// bare object key.
func S3PresignImage(key string) string {
	if key == "" {
		return ""
	}
	bucket := os.Getenv("S3_GALLERY_BUCKET")
	client := GetS3Client()
	if client == nil {
		return ""
	}
	presigner := s3.NewPresignClient(client)
	req, err := presigner.PresignGetObject(context.Background(), &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		log.Printf("Could not presign %s: %s\n", key, err.Error())
		return ""
	}
	return req.URL
}

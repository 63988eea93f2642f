package main

import (
	"fmt"
	"log"
	"net/http"
)

type Handler struct {
	tr     Transitioner
	config Config
}

type S3ObjectInfo struct {
	Bucket string
	Key    string
}

func NewHandler() *Handler {
	config := LoadConfigFromEnv()
	return &Handler{tr: NewTransitioner(config), config: config}
}

func (h *Handler) HandleLambdaEvent(event S3ObjectCreatedEvent) (Response, error) {
	if h.config.BucketName == "" {
		log.Println("BUCKET_NAME environment variable is not set")
		return Response{StatusCode: http.StatusInternalServerError, Body: "Internal Server Error"}, nil
	}
	if len(event.Records) == 0 {
		log.Println(`invalid event structure, no "Records" found`)
		return Response{StatusCode: http.StatusBadRequest, Body: "Invalid event structure."}, nil
	}
	// Only the first record is read; additional records are ignored.
	objectKey := event.Records[0].S3.Object.Key

	return h.tr.TransitionObject(S3ObjectInfo{
		Bucket: h.config.BucketName,
		Key:    objectKey,
	}), nil
}

func (h *Handler) HandleS3URL(url string) error {
	bucket, key, err := ParseS3URL(url)
	if err != nil {
		return fmt.Errorf("failed to parse S3 URL: %v", err)
	}

	resp := h.tr.TransitionObject(S3ObjectInfo{Bucket: bucket, Key: key})
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("transition of s3://%s/%s failed with status %d: %s", bucket, key, resp.StatusCode, resp.Body)
	}
	log.Println(resp.Body)

	return nil
}

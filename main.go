package main

import (
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	h := NewHandler()
	if os.Getenv("AWS_LAMBDA_RUNTIME_API") != "" {
		lambda.Start(h.HandleLambdaEvent)
	} else {
		if len(os.Args) < 2 {
			log.Fatalln("s3 url is required as an argument")
		}
		err := h.HandleS3URL(os.Args[1])
		if err != nil {
			log.Fatalln(err)
		}
	}
}

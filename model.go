package main

type S3Record struct {
	S3 struct {
		Bucket struct {
			Name string `json:"name"`
		} `json:"bucket"`
		Object struct {
			Key string `json:"key"`
		} `json:"object"`
	} `json:"s3"`
}

type S3ObjectCreatedEvent struct {
	Records []S3Record `json:"Records"`
}

// Response is returned to the invoking platform for every terminal
// branch, error branches included.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

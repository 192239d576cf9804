package schemas

// UploadResponse struct
type UploadResponse struct {
	Success     bool     `json:"success"`
	IpfsHash    string   `json:"ipfsHash"`
	URL         string   `json:"url"`
	GatewayURLs []string `json:"gatewayUrls"`
}

// UploadMetadataSchema struct
type UploadMetadataSchema struct {
	Name string `json:"name" validate:"max=200"`
}

// UploadJSONSchema struct
type UploadJSONSchema struct {
	Data     interface{}          `json:"data" validate:"required"`
	Metadata UploadMetadataSchema `json:"metadata"`
}

// UploadJSONResponse struct
type UploadJSONResponse struct {
	Success  bool   `json:"success"`
	IpfsHash string `json:"ipfsHash"`
	URL      string `json:"url"`
}

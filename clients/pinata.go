package clients

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
)

// PublicGateways are offered alongside the configured gateway
var PublicGateways = []string{
	"https://ipfs.io/ipfs/",
	"https://cloudflare-ipfs.com/ipfs/",
	"https://dweb.link/ipfs/",
}

// PinResult is the outcome of a pin request
type PinResult struct {
	IpfsHash  string `json:"IpfsHash"`
	PinSize   int64  `json:"PinSize"`
	Timestamp string `json:"Timestamp"`
}

type pinataMetadata struct {
	Name string `json:"name"`
}

type pinJSONRequest struct {
	PinataContent  interface{}    `json:"pinataContent"`
	PinataMetadata pinataMetadata `json:"pinataMetadata"`
}

// Pinata calls the Pinata pinning API
type Pinata struct {
	BaseURL    string
	JWT        string
	GatewayURL string
	Timeout    time.Duration
}

// URL returns the configured gateway link for hash
func (p *Pinata) URL(hash string) string {
	return strings.TrimRight(p.GatewayURL, "/") + "/ipfs/" + hash
}

// GatewayURLs lists every gateway link for hash, configured gateway first
func (p *Pinata) GatewayURLs(hash string) []string {
	urls := []string{p.URL(hash)}
	for _, g := range PublicGateways {
		urls = append(urls, g+hash)
	}
	return urls
}

// PinFile pins a file under name
func (p *Pinata) PinFile(ctx context.Context, name string, data []byte) (*PinResult, error) {
	if p.JWT == "" {
		return nil, ErrNoAPIKey
	}
	timeout, err := timeoutFor(ctx, p.Timeout)
	if err != nil {
		return nil, err
	}

	meta, err := jsoniter.MarshalToString(pinataMetadata{Name: name})
	if err != nil {
		return nil, err
	}
	args := fiber.AcquireArgs()
	defer fiber.ReleaseArgs(args)
	args.Set("pinataMetadata", meta)

	a := agentClient.Post(strings.TrimRight(p.BaseURL, "/") + "/pinning/pinFileToIPFS")
	a.Set(fiber.HeaderAuthorization, "Bearer "+p.JWT)
	a.FileData(&fiber.FormFile{Fieldname: "file", Name: name, Content: data}).MultipartForm(args)

	res := new(PinResult)
	if _, err := send("pinata", a, timeout, res); err != nil {
		return nil, err
	}
	return res, nil
}

// PinJSON pins data as a JSON document named name
func (p *Pinata) PinJSON(ctx context.Context, name string, data interface{}) (*PinResult, error) {
	if p.JWT == "" {
		return nil, ErrNoAPIKey
	}
	timeout, err := timeoutFor(ctx, p.Timeout)
	if err != nil {
		return nil, err
	}

	a := agentClient.Post(strings.TrimRight(p.BaseURL, "/") + "/pinning/pinJSONToIPFS")
	a.Set(fiber.HeaderAuthorization, "Bearer "+p.JWT)
	a.JSON(pinJSONRequest{
		PinataContent:  data,
		PinataMetadata: pinataMetadata{Name: name},
	})

	res := new(PinResult)
	if _, err := send("pinata", a, timeout, res); err != nil {
		return nil, err
	}
	return res, nil
}

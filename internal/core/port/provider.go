package port

// MediaProvider is a backend able to serve every gallery operation
type MediaProvider interface {
	MediaCatalog
	MediaUploader
	UsageSource
	Name() string
}

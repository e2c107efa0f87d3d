package domain

type CardAssetStatus string

const (
	CardAssetStatusPending   CardAssetStatus = "PENDING"   // upload URL issued
	CardAssetStatusConfirmed CardAssetStatus = "CONFIRMED" // bytes verified in storage
)

// MaxCardAssetSizeBytes caps invitation card uploads at 10 MB.
const MaxCardAssetSizeBytes int64 = 10 * 1024 * 1024

// AllowedCardContentTypes is the media-type allow-list for invitation
// card artwork.
var AllowedCardContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// CardAsset is the invitation card image an admin attaches when
// approving an event.
type CardAsset struct {
	ID            int32           `json:"id"`
	EventID       *int32          `json:"event_id,omitempty"` // set when attached on approval
	UploadedBy    int32           `json:"uploaded_by"`
	StorageKey    string          `json:"storage_key"`
	ContentType   string          `json:"content_type"`
	FileSizeBytes int64           `json:"file_size_bytes"`
	Status        CardAssetStatus `json:"status"`
	CreatedOn     string          `json:"created_on"`
}

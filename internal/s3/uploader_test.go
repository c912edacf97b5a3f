package s3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectURL(t *testing.T) {
	u := &Uploader{Bucket: "wms-reports", Region: "ap-south-1"}
	assert.Equal(t, "https://wms-reports.s3.ap-south-1.amazonaws.com/reports/bins/BIN1/a.json", u.ObjectURL("reports/bins/BIN1/a.json"))

	u.CloudFrontDomain = "cdn.example.com"
	assert.Equal(t, "https://cdn.example.com/reports/bins/BIN1/a.json", u.ObjectURL("reports/bins/BIN1/a.json"))
}

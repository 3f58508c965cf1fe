package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/PayRam/go-storefront/request"
	"github.com/PayRam/go-storefront/service"
	"github.com/gorilla/mux"
	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
)

const (
	// uploadField is the multipart field carrying an image.
	uploadField = "file"
	// itemIDField is accepted as the key of every update form.
	itemIDField = "item_id"

	maxFormMemory = 8 << 20
	maxImageSize  = 16 << 20
	// maxBodySize bounds a whole request body, upload included.
	maxBodySize = maxImageSize + maxFormMemory
)

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

var (
	timeType    = reflect.TypeOf(time.Time{})
	decimalType = reflect.TypeOf(decimal.Decimal{})
)

func stringToTimeHook(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
	if f.Kind() != reflect.String || t != timeType {
		return data, nil
	}
	value := strings.TrimSpace(data.(string))
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return nil, fmt.Errorf("invalid time %q", value)
}

func stringToDecimalHook(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
	if f.Kind() != reflect.String || t != decimalType {
		return data, nil
	}
	return decimal.NewFromString(strings.TrimSpace(data.(string)))
}

// parseForm parses the query string and a urlencoded or multipart body of at
// most maxBodySize bytes.
func parseForm(w http.ResponseWriter, r *http.Request) error {
	if r.Body != nil {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	}
	if err := r.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return service.Validation("invalid form: %v", err)
	}
	return nil
}

// formValues flattens the parsed form. Blank values count as not provided.
func formValues(r *http.Request) map[string]interface{} {
	values := make(map[string]interface{}, len(r.Form))
	for key, fieldValues := range r.Form {
		if len(fieldValues) == 0 || strings.TrimSpace(fieldValues[0]) == "" {
			continue
		}
		values[key] = fieldValues[0]
	}
	return values
}

func decodeValues(values map[string]interface{}, dest interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.ComposeDecodeHookFunc(stringToTimeHook, stringToDecimalHook),
		WeaklyTypedInput: true,
		Result:           dest,
	})
	if err != nil {
		return service.Internal("failed to build form decoder", err)
	}
	if err := decoder.Decode(values); err != nil {
		return service.Validation("invalid form: %v", err)
	}
	return nil
}

// decodeForm fills dest from the request form. When dest accepts an image and
// one was uploaded, it is read into dest as well.
func decodeForm(w http.ResponseWriter, r *http.Request, dest interface{}) error {
	if err := parseForm(w, r); err != nil {
		return err
	}
	if err := decodeValues(formValues(r), dest); err != nil {
		return err
	}

	setter, ok := dest.(request.ImageSetter)
	if !ok {
		return nil
	}
	image, err := readUpload(r)
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		return err
	}
	if len(image) > 0 {
		setter.SetImage(image)
	}
	return nil
}

// readUpload returns the uploaded image, or http.ErrMissingFile.
func readUpload(r *http.Request) ([]byte, error) {
	file, _, err := r.FormFile(uploadField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, http.ErrMissingFile
		}
		return nil, service.Validation("invalid upload: %v", err)
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxImageSize+1))
	if err != nil {
		return nil, service.Validation("failed to read upload: %v", err)
	}
	if len(image) > maxImageSize {
		return nil, service.Validation("image exceeds %d bytes", maxImageSize)
	}
	return image, nil
}

func parseKey(name, value string) (uint, error) {
	key, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
	if err != nil || key == 0 {
		return 0, service.Validation("%s must be a positive integer, got %q", name, value)
	}
	return uint(key), nil
}

// pathKey reads the {id} route variable.
func pathKey(r *http.Request) (uint, error) {
	return parseKey("id", mux.Vars(r)["id"])
}

// formKey reads the key of an update form from field, or from item_id.
func formKey(r *http.Request, field string) (uint, error) {
	if value := r.FormValue(field); strings.TrimSpace(value) != "" {
		return parseKey(field, value)
	}
	if value := r.FormValue(itemIDField); strings.TrimSpace(value) != "" {
		return parseKey(itemIDField, value)
	}
	return 0, service.Validation("%s is required", field)
}

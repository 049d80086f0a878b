package mowojang

import (
	"fmt"

	"github.com/tidwall/gjson"

	"uuidhunt/internal/core/domain"
	"uuidhunt/internal/platform/errors"
)

// ParseProfile reads a single {"id","name"} object.
func ParseProfile(body []byte) (domain.Profile, error) {
	if !gjson.ValidBytes(body) {
		return domain.Profile{}, errors.Wrap(errors.ErrInvalidResponse, "body is not valid JSON")
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return domain.Profile{}, errors.Wrapf(errors.ErrInvalidResponse, "expected object, got %s", root.Type)
	}
	return profileFrom(root)
}

// ParseProfiles reads an array of {"id","name"} objects. A malformed
// element invalidates the whole response.
func ParseProfiles(body []byte) ([]domain.Profile, error) {
	if len(body) == 0 {
		return nil, nil
	}
	if !gjson.ValidBytes(body) {
		return nil, errors.Wrap(errors.ErrInvalidResponse, "body is not valid JSON")
	}
	root := gjson.ParseBytes(body)
	if root.Type == gjson.Null {
		return nil, nil
	}
	if !root.IsArray() {
		return nil, errors.Wrapf(errors.ErrInvalidResponse, "expected array, got %s", root.Type)
	}

	items := root.Array()
	profiles := make([]domain.Profile, 0, len(items))
	for i, item := range items {
		p, err := profileFrom(item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func profileFrom(v gjson.Result) (domain.Profile, error) {
	id := v.Get("id")
	name := v.Get("name")
	if id.Type != gjson.String || name.Type != gjson.String {
		return domain.Profile{}, errors.Wrap(errors.ErrInvalidResponse, "missing id or name")
	}
	p, err := domain.NewProfile(name.String(), id.String())
	if err != nil {
		return domain.Profile{}, errors.Wrap(errors.ErrInvalidResponse, err.Error())
	}
	return p, nil
}

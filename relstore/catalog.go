package relstore

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// catalog is the nested-object dataset shape shared by JSON and YAML.
type catalog struct {
	Plants []catalogPlant `json:"plants" yaml:"plants"`
}

type catalogPlant struct {
	Name       string      `json:"plantName" yaml:"plantName"`
	Code       plantCode   `json:"plantCode" yaml:"plantCode"`
	Companions []plantCode `json:"companionPlantCodes" yaml:"companionPlantCodes"`
}

// plantCode accepts both string and numeric codes.
type plantCode string

// UnmarshalJSON decodes a JSON string or number.
func (c *plantCode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = plantCode(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("plant code must be a string or a number, got %s", data)
	}
	*c = plantCode(n.String())

	return nil
}

func readJSON(src string, r io.Reader) (dataset, error) {
	var cat catalog
	if err := json.NewDecoder(r).Decode(&cat); err != nil {
		return dataset{}, &LoadError{Source: src, Err: fmt.Errorf("%w: %v", ErrUnreadable, err)}
	}

	return fromCatalog(src, cat)
}

func readYAML(src string, r io.Reader) (dataset, error) {
	var cat catalog
	if err := yaml.NewDecoder(r).Decode(&cat); err != nil {
		return dataset{}, &LoadError{Source: src, Err: fmt.Errorf("%w: %v", ErrUnreadable, err)}
	}

	return fromCatalog(src, cat)
}

// fromCatalog resolves companion codes to names. A plant Q listing code c
// is helped by the plant whose code is c.
func fromCatalog(src string, cat catalog) (dataset, error) {
	var ds dataset
	byCode := make(map[string]string, len(cat.Plants))
	names := make([]string, len(cat.Plants))

	for i, p := range cat.Plants {
		num := i + 1
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return ds, &LoadError{Source: src, Record: num, Field: "plantName", Err: ErrMissingField}
		}
		code := strings.TrimSpace(string(p.Code))
		if code == "" {
			return ds, &LoadError{Source: src, Record: num, Field: "plantCode", Err: ErrMissingField}
		}
		if prev, dup := byCode[code]; dup {
			return ds, &LoadError{Source: src, Record: num, Field: "plantCode",
				Err: fmt.Errorf("%w: %q used by %s and %s", ErrDuplicateCode, code, prev, name)}
		}
		byCode[code] = name
		names[i] = name
		ds.plants = append(ds.plants, name)
	}

	for i, p := range cat.Plants {
		for _, c := range p.Companions {
			helper, ok := byCode[strings.TrimSpace(string(c))]
			if !ok {
				return ds, &LoadError{Source: src, Record: i + 1, Field: "companionPlantCodes",
					Err: fmt.Errorf("%w: %q", ErrUnknownCode, string(c))}
			}
			ds.records = append(ds.records, record{num: i + 1, helper: helper, helped: names[i]})
		}
	}

	return ds, nil
}

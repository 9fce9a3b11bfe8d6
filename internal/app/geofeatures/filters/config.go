package filters

import (
	"errors"
	"io"

	"gopkg.in/yaml.v2"
)

type config struct {
	Fields []Field `yaml:"fields"`
}

// LoadFields decodes an allow-list of the form
//
//	fields:
//	  - name: id
//	    column: id
//	    kind: integer
//	  - name: status
//	    property: status
func LoadFields(r io.Reader) ([]Field, error) {
	c := config{}

	err := yaml.NewDecoder(r).Decode(&c)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	for _, f := range c.Fields {
		if err := f.validate(); err != nil {
			return nil, err
		}
	}

	return c.Fields, nil
}

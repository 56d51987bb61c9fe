package models

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"
)

// JSONB plumbing for the columns that hold pipeline output. sqlx scans these
// straight from jsonb columns via the Valuer/Scanner pairs below.

type JobLogs []string

func jsonbValue(v interface{}) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "jsonb marshal")
	}
	return b, nil
}

func jsonbScan(src, dst interface{}) error {
	if src == nil {
		return nil
	}
	var raw []byte
	switch s := src.(type) {
	case []byte:
		raw = s
	case string:
		raw = []byte(s)
	default:
		return errors.Errorf("jsonb scan: unsupported source type %T", src)
	}
	return errors.Wrap(json.Unmarshal(raw, dst), "jsonb unmarshal")
}

func (l JobLogs) Value() (driver.Value, error) {
	if l == nil {
		return jsonbValue(JobLogs{})
	}
	return jsonbValue(l)
}

func (l *JobLogs) Scan(src interface{}) error { return jsonbScan(src, l) }

func (a *Analysis) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return jsonbValue(a)
}

func (a *Analysis) Scan(src interface{}) error { return jsonbScan(src, a) }

func (s SceneList) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return jsonbValue(s)
}

func (s *SceneList) Scan(src interface{}) error { return jsonbScan(src, s) }

func (p *Program) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	return jsonbValue(p)
}

func (p *Program) Scan(src interface{}) error { return jsonbScan(src, p) }

// Package config provides the suite loader for utext.
package config

import (
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/utext/internal/core/domain"
	"go.trai.ch/utext/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the suite file looked up when a directory is given.
const DefaultFilename = "utext.yaml"

// SupportedVersion is the suite schema version this loader understands.
const SupportedVersion = "1"

var _ ports.SuiteLoader = (*Loader)(nil)

// Loader implements ports.SuiteLoader using YAML files.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new suite loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Logger: log}
}

// Load reads the suite at path. If path is a directory, DefaultFilename inside it is used.
func (l *Loader) Load(path string) (*domain.Suite, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, DefaultFilename)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(err, "suite file not found"), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read suite file"), "path", path)
	}

	var file Suitefile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse suite file"), "path", path)
	}

	if file.Version != SupportedVersion && l.Logger != nil {
		l.Logger.Warn("suite " + path + " declares version " + quoteOrNone(file.Version) +
			"; reading it as version " + SupportedVersion)
	}

	return Parse(file)
}

// Parse converts a decoded suite file into a domain.Suite with cases sorted by name.
func Parse(file Suitefile) (*domain.Suite, error) {
	names := make([]string, 0, len(file.Cases))
	for name := range file.Cases {
		names = append(names, name)
	}
	slices.Sort(names)

	suite := &domain.Suite{Version: file.Version, Cases: make([]domain.Case, 0, len(names))}
	for _, name := range names {
		c, err := parseCase(name, file.Cases[name])
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to parse case"), "case", name)
		}
		suite.Cases = append(suite.Cases, c)
	}
	return suite, nil
}

func parseCase(name string, dto CaseDTO) (domain.Case, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Case{}, zerr.Wrap(domain.ErrSuiteInvalid, "case name is empty")
	}

	src, err := parseSource(dto.Source)
	if err != nil {
		return domain.Case{}, err
	}

	c := domain.Case{Name: name, Source: src, Expect: make([]domain.Expectation, 0, len(dto.Expect))}
	for i, e := range dto.Expect {
		exp, err := parseExpectation(e)
		if err != nil {
			return domain.Case{}, zerr.With(zerr.Wrap(err, "failed to parse expectation"), "expect_index", i)
		}
		c.Expect = append(c.Expect, exp)
	}
	return c, nil
}

func parseSource(dto SourceDTO) (domain.Source, error) {
	src := domain.Source{
		Kind:    domain.SourceKind(strings.ToLower(dto.Kind)),
		Literal: dto.Literal,
		Count:   dto.Count,
		Units:   dto.Units,
		Start:   dto.Start,
		Offset:  dto.Offset,
	}

	switch src.Kind {
	case domain.SourceLiteral, domain.SourceUnits, domain.SourceUnitsRange, domain.SourceTerminatedUnits:
		return src, nil
	case domain.SourceRepeated:
		ch := domain.FromString(dto.Char)
		if ch.Len() != 1 {
			return domain.Source{}, zerr.With(zerr.Wrap(domain.ErrSuiteInvalid, "char must be a single code unit"), "char", dto.Char)
		}
		src.Char, _ = ch.At(0)
		return src, nil
	case domain.SourceBytes, domain.SourceTerminated:
		return parseByteSource(src, dto)
	case "":
		return domain.Source{}, zerr.Wrap(domain.ErrSuiteInvalid, "source kind is required")
	default:
		return domain.Source{}, zerr.With(zerr.Wrap(domain.ErrSuiteInvalid, "unknown source kind"), "source_kind", dto.Kind)
	}
}

func parseByteSource(src domain.Source, dto SourceDTO) (domain.Source, error) {
	enc, err := domain.ParseEncoding(dto.Encoding)
	if err != nil {
		return domain.Source{}, zerr.Wrap(domain.ErrSuiteInvalid, err.Error())
	}
	src.Encoding = enc

	data, err := parseBytes(dto)
	if err != nil {
		return domain.Source{}, err
	}
	src.Bytes = data

	switch {
	case src.Kind == domain.SourceTerminated:
		src.Length = domain.ScanToTerminator
	case dto.Length != nil:
		src.Length = *dto.Length
	default:
		// Without an explicit length the window runs to the end of the buffer.
		src.Length = max(len(data)/enc.UnitSize()-src.Offset, 0)
	}
	return src, nil
}

func parseBytes(dto SourceDTO) ([]byte, error) {
	if dto.Hex != "" {
		if len(dto.Bytes) > 0 {
			return nil, zerr.Wrap(domain.ErrSuiteInvalid, "bytes and hex are mutually exclusive")
		}
		data, err := hex.DecodeString(strings.ReplaceAll(dto.Hex, " ", ""))
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrSuiteInvalid, "invalid hex"), "hex", dto.Hex)
		}
		return data, nil
	}

	data := make([]byte, len(dto.Bytes))
	for i, b := range dto.Bytes {
		if b < 0 || b > 0xFF {
			return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrSuiteInvalid, "byte out of range"), "index", i), "value", b)
		}
		data[i] = byte(b)
	}
	return data, nil
}

func parseExpectation(dto ExpectDTO) (domain.Expectation, error) {
	op, err := domain.ParseOp(dto.Op)
	if err != nil {
		return domain.Expectation{}, err
	}

	exp := domain.Expectation{Op: op, Arg: string(dto.Arg), Want: string(dto.Want)}
	if dto.Mode != "" {
		mode, err := domain.ParseComparisonMode(dto.Mode)
		if err != nil {
			return domain.Expectation{}, zerr.Wrap(domain.ErrSuiteInvalid, err.Error())
		}
		exp.Mode = mode
	}

	if op == domain.OpError && exp.Want != domain.WantRange && exp.Want != domain.WantDecode {
		return domain.Expectation{}, zerr.With(
			zerr.Wrap(domain.ErrSuiteInvalid, "error expectation must want "+domain.WantRange+" or "+domain.WantDecode),
			"want", exp.Want)
	}
	return exp, nil
}

func quoteOrNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return `"` + s + `"`
}

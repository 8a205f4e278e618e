// Package profile holds the per-variant configuration of the node blob compiler.
//
// A profile fixes everything that differs between blob variants: record layout,
// byte order, source column names, enum tables, flag bit assignment and the
// true-token of the source spreadsheet, plus the fixed input and output paths.
// Profiles are data, not code; the built-in set is embedded from profiles.yaml.
package profile

import (
	"fmt"
	"unicode/utf8"

	"github.com/ctse-tools/nodebin/endian"
	"github.com/ctse-tools/nodebin/enum"
	"github.com/ctse-tools/nodebin/errs"
	"github.com/ctse-tools/nodebin/format"
	"github.com/ctse-tools/nodebin/section"
)

// Columns names the source columns read by the record encoder.
// Which columns are required depends on the layout.
type Columns struct {
	Name           string `yaml:"name"`
	CourseID       string `yaml:"course_id"`
	PageID         string `yaml:"page_id"`
	StageType      string `yaml:"stage_type"`
	NodeType       string `yaml:"node_type"`
	NodeIcon       string `yaml:"node_icon"`
	NodeDepth      string `yaml:"node_depth"`
	CollectItemNum string `yaml:"collect_item_num"`
	GameVersion    string `yaml:"game_version"`
	ChallengeTime  string `yaml:"challenge_time"`
}

// Tables lists the labels of each category in encoding order.
type Tables struct {
	NodeTypes  []string `yaml:"node_types"`
	NodeIcons  []string `yaml:"node_icons"`
	StageTypes []string `yaml:"stage_types"`
}

// Profile is one blob variant.
type Profile struct {
	Name        string                 `yaml:"-"`
	Description string                 `yaml:"description"`
	Layout      format.Layout          `yaml:"layout"`
	ByteOrder   format.ByteOrder       `yaml:"byte_order"`
	Input       string                 `yaml:"input"`
	Output      string                 `yaml:"output"`
	Delimiter   string                 `yaml:"delimiter"`
	Compression format.CompressionType `yaml:"compression"`
	Columns     Columns                `yaml:"columns"`
	Tables      Tables                 `yaml:"tables"`
	Flags       section.FlagSpec       `yaml:"flags"`

	nodeTypes  *enum.Table
	nodeIcons  *enum.Table
	stageTypes *enum.Table
}

// Engine returns the endian engine of the profile byte order.
func (p *Profile) Engine() endian.EndianEngine {
	return endian.ForByteOrder(p.ByteOrder)
}

// Comma returns the CSV field delimiter, ',' when unset.
func (p *Profile) Comma() rune {
	if p.Delimiter == "" {
		return ','
	}

	r, _ := utf8.DecodeRuneInString(p.Delimiter)

	return r
}

// NodeTypes returns the node type table. Nil for the stage layout.
func (p *Profile) NodeTypes() *enum.Table {
	return p.nodeTypes
}

// NodeIcons returns the node icon table.
func (p *Profile) NodeIcons() *enum.Table {
	return p.nodeIcons
}

// StageTypes returns the stage type table.
func (p *Profile) StageTypes() *enum.Table {
	return p.stageTypes
}

// RecordSize returns the record width of the profile layout.
func (p *Profile) RecordSize() (int, error) {
	return section.RecordSize(p.Layout)
}

// Validate checks the profile and builds its enum tables.
// It must succeed before the profile is handed to an encoder.
func (p *Profile) Validate() error {
	if p.Compression == 0 {
		p.Compression = format.CompressionNone
	}

	if p.ByteOrder != format.LittleEndian && p.ByteOrder != format.BigEndian {
		return p.invalid("byte_order is required")
	}

	if utf8.RuneCountInString(p.Delimiter) > 1 {
		return p.invalid("delimiter %q must be a single character", p.Delimiter)
	}

	required := map[string]string{
		"name":           p.Columns.Name,
		"course_id":      p.Columns.CourseID,
		"stage_type":     p.Columns.StageType,
		"node_icon":      p.Columns.NodeIcon,
		"game_version":   p.Columns.GameVersion,
		"challenge_time": p.Columns.ChallengeTime,
	}

	switch p.Layout {
	case format.LayoutLevel:
		required["node_type"] = p.Columns.NodeType
		if len(p.Tables.NodeTypes) == 0 {
			return p.invalid("level layout needs tables.node_types")
		}
	case format.LayoutStage:
		required["page_id"] = p.Columns.PageID
		required["node_depth"] = p.Columns.NodeDepth
		required["collect_item_num"] = p.Columns.CollectItemNum
	default:
		return p.invalid("layout is required")
	}

	for key, column := range required {
		if column == "" {
			return p.invalid("columns.%s is required for the %s layout", key, p.Layout)
		}
	}

	if len(p.Tables.NodeIcons) == 0 || len(p.Tables.StageTypes) == 0 {
		return p.invalid("tables.node_icons and tables.stage_types are required")
	}

	// node type and node icon codes are stored in nibbles
	if len(p.Tables.NodeTypes) > section.NibbleMask+1 || len(p.Tables.NodeIcons) > section.NibbleMask+1 {
		return p.invalid("node_types and node_icons hold at most 16 labels")
	}

	if len(p.Tables.StageTypes) > 127 {
		return p.invalid("stage_types holds at most 127 labels")
	}

	if err := p.Flags.Validate(); err != nil {
		return p.invalid("%v", err)
	}

	var err error
	if p.Layout == format.LayoutLevel {
		if p.nodeTypes, err = enum.NewTable("node type", p.Tables.NodeTypes...); err != nil {
			return p.invalid("%v", err)
		}
	}

	if p.nodeIcons, err = enum.NewTable("node icon", p.Tables.NodeIcons...); err != nil {
		return p.invalid("%v", err)
	}

	if p.stageTypes, err = enum.NewTable("stage type", p.Tables.StageTypes...); err != nil {
		return p.invalid("%v", err)
	}

	return nil
}

func (p *Profile) invalid(msg string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", errs.ErrInvalidProfile, p.Name, fmt.Sprintf(msg, args...))
}

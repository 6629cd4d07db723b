package database

import (
	"database/sql"
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"jordanella.com/campaign-options/internal/campaign"
	"jordanella.com/campaign-options/internal/config"
	"jordanella.com/campaign-options/internal/options"
	"jordanella.com/campaign-options/internal/skills"
)

// ErrCampaignNotFound is returned for campaign ids with no stored row
var ErrCampaignNotFound = errors.New("campaign not found")

const dateLayout = "2006-01-02"

// SaveCampaign writes the campaign and its option documents. A campaign
// without an id is inserted and given the new id.
func (db *DB) SaveCampaign(c *campaign.Campaign) (int64, error) {
	st := c.State()
	docs, err := encodeDocuments(st)
	if err != nil {
		return 0, err
	}

	id := c.ID()
	now := time.Now().UTC()
	err = db.ExecTx(func(tx *sql.Tx) error {
		if id == 0 {
			result, err := tx.Exec(`
				INSERT INTO campaigns (
					name, faction_code, campaign_date, camo_category, camo_file,
					colour, icon_category, icon_file, rank_system, created_at, updated_at
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, st.Name, st.FactionCode, st.Date.Format(dateLayout),
				st.Camouflage.Category, st.Camouflage.Filename, formatColour(st.Colour),
				st.UnitIcon.Category, st.UnitIcon.Filename, st.RankSystem, now, now)
			if err != nil {
				return fmt.Errorf("failed to insert campaign: %w", err)
			}
			id, err = result.LastInsertId()
			if err != nil {
				return err
			}
		} else {
			result, err := tx.Exec(`
				UPDATE campaigns
				SET name = ?, faction_code = ?, campaign_date = ?,
					camo_category = ?, camo_file = ?, colour = ?,
					icon_category = ?, icon_file = ?, rank_system = ?, updated_at = ?
				WHERE id = ?
			`, st.Name, st.FactionCode, st.Date.Format(dateLayout),
				st.Camouflage.Category, st.Camouflage.Filename, formatColour(st.Colour),
				st.UnitIcon.Category, st.UnitIcon.Filename, st.RankSystem, now, id)
			if err != nil {
				return fmt.Errorf("failed to update campaign: %w", err)
			}
			if n, err := result.RowsAffected(); err == nil && n == 0 {
				return fmt.Errorf("%w: %d", ErrCampaignNotFound, id)
			}
		}

		_, err := tx.Exec(`
			INSERT INTO campaign_options (
				campaign_id, options_ini, rules_yaml, abilities_yaml, skill_table_yaml, updated_at
			) VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(campaign_id) DO UPDATE SET
				options_ini = excluded.options_ini,
				rules_yaml = excluded.rules_yaml,
				abilities_yaml = excluded.abilities_yaml,
				skill_table_yaml = excluded.skill_table_yaml,
				updated_at = excluded.updated_at
		`, id, docs.optionsINI, docs.rules, docs.abilities, docs.skillTable, now)
		if err != nil {
			return fmt.Errorf("failed to save campaign options: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if c.ID() == 0 {
		c.SetID(id)
	}
	return id, nil
}

// LoadCampaign restores a stored campaign
func (db *DB) LoadCampaign(id int64) (*campaign.Campaign, error) {
	var (
		st           campaign.State
		date, colour string
		docs         documents
	)
	err := db.conn.QueryRow(`
		SELECT
			c.name, c.faction_code, c.campaign_date, c.camo_category, c.camo_file,
			c.colour, c.icon_category, c.icon_file, c.rank_system,
			o.options_ini, o.rules_yaml, o.abilities_yaml, o.skill_table_yaml
		FROM campaigns c
		JOIN campaign_options o ON o.campaign_id = c.id
		WHERE c.id = ?
	`, id).Scan(
		&st.Name, &st.FactionCode, &date, &st.Camouflage.Category, &st.Camouflage.Filename,
		&colour, &st.UnitIcon.Category, &st.UnitIcon.Filename, &st.RankSystem,
		&docs.optionsINI, &docs.rules, &docs.abilities, &docs.skillTable,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrCampaignNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load campaign %d: %w", id, err)
	}

	if st.Date, err = time.Parse(dateLayout, date); err != nil {
		return nil, fmt.Errorf("campaign %d: bad date %q: %w", id, date, err)
	}
	if st.Colour, err = parseColour(colour); err != nil {
		return nil, fmt.Errorf("campaign %d: %w", id, err)
	}
	if err := decodeDocuments(docs, &st); err != nil {
		return nil, fmt.Errorf("campaign %d: %w", id, err)
	}

	return campaign.Restore(id, st)
}

// ListCampaigns returns every stored campaign ordered by name
func (db *DB) ListCampaigns() ([]CampaignSummary, error) {
	rows, err := db.conn.Query(`
		SELECT id, name, faction_code, campaign_date, updated_at
		FROM campaigns
		ORDER BY name COLLATE NOCASE, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	defer rows.Close()

	var list []CampaignSummary
	for rows.Next() {
		var s CampaignSummary
		var date string
		if err := rows.Scan(&s.ID, &s.Name, &s.FactionCode, &date, &s.UpdatedAt); err != nil {
			return nil, err
		}
		if s.Date, err = time.Parse(dateLayout, date); err != nil {
			return nil, fmt.Errorf("campaign %d: bad date %q: %w", s.ID, date, err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// DeleteCampaign removes a campaign with its options and history
func (db *DB) DeleteCampaign(id int64) error {
	return db.ExecTx(func(tx *sql.Tx) error {
		result, err := tx.Exec(`DELETE FROM campaigns WHERE id = ?`, id)
		if err != nil {
			return err
		}
		if n, err := result.RowsAffected(); err == nil && n == 0 {
			return fmt.Errorf("%w: %d", ErrCampaignNotFound, id)
		}
		return nil
	})
}

// RecordOptionsSnapshot appends the committed options of a campaign to its
// history
func (db *DB) RecordOptionsSnapshot(campaignID int64, st campaign.State, changed []string) (int64, error) {
	text, err := config.OptionsText(options.DefaultSchema(), recordsOf(st))
	if err != nil {
		return 0, err
	}

	var snapshotID int64
	err = db.ExecTx(func(tx *sql.Tx) error {
		result, err := tx.Exec(`
			INSERT INTO options_history (campaign_id, changed_fields, options_ini, recorded_at)
			VALUES (?, ?, ?, ?)
		`, campaignID, strings.Join(changed, ","), text, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("failed to insert options snapshot: %w", err)
		}
		snapshotID, err = result.LastInsertId()
		return err
	})
	if err != nil {
		return 0, err
	}
	return snapshotID, nil
}

// ListOptionsHistory returns the newest snapshots first. A limit of zero
// or less returns all of them.
func (db *DB) ListOptionsHistory(campaignID int64, limit int) ([]OptionsSnapshot, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := db.conn.Query(`
		SELECT id, campaign_id, changed_fields, options_ini, recorded_at
		FROM options_history
		WHERE campaign_id = ?
		ORDER BY id DESC
		LIMIT ?
	`, campaignID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list options history: %w", err)
	}
	defer rows.Close()

	var list []OptionsSnapshot
	for rows.Next() {
		var s OptionsSnapshot
		var changed string
		if err := rows.Scan(&s.ID, &s.CampaignID, &changed, &s.OptionsINI, &s.RecordedAt); err != nil {
			return nil, err
		}
		if changed != "" {
			s.ChangedFields = strings.Split(changed, ",")
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// SnapshotRecords decodes the options stored in a history entry
func SnapshotRecords(s OptionsSnapshot) (options.Records, error) {
	recs := options.DefaultRecords()
	if err := config.DecodeOptions(options.DefaultSchema(), []byte(s.OptionsINI), recs); err != nil {
		return options.Records{}, fmt.Errorf("snapshot %d: %w", s.ID, err)
	}
	return recs, nil
}

func recordsOf(st campaign.State) options.Records {
	return options.Records{Options: st.Options, Skills: st.SkillPreferences}
}

func encodeDocuments(st campaign.State) (documents, error) {
	var docs documents
	var err error

	if docs.optionsINI, err = config.OptionsText(options.DefaultSchema(), recordsOf(st)); err != nil {
		return docs, err
	}

	parts := []struct {
		name string
		v    interface{}
		dst  *string
	}{
		{"rules", map[string]string(st.Rules), &docs.rules},
		{"abilities", st.Abilities.List(), &docs.abilities},
		{"skill table", st.SkillTable, &docs.skillTable},
	}
	for _, p := range parts {
		data, err := yaml.Marshal(p.v)
		if err != nil {
			return docs, fmt.Errorf("failed to encode %s: %w", p.name, err)
		}
		*p.dst = string(data)
	}
	return docs, nil
}

func decodeDocuments(docs documents, st *campaign.State) error {
	recs := options.DefaultRecords()
	if err := config.DecodeOptions(options.DefaultSchema(), []byte(docs.optionsINI), recs); err != nil {
		return err
	}
	st.Options = recs.Options
	st.SkillPreferences = recs.Skills

	var rules map[string]string
	if err := yaml.Unmarshal([]byte(docs.rules), &rules); err != nil {
		return fmt.Errorf("failed to decode rules: %w", err)
	}
	st.Rules = campaign.GameRules(rules)

	var abilities []skills.SpecialAbility
	if err := yaml.Unmarshal([]byte(docs.abilities), &abilities); err != nil {
		return fmt.Errorf("failed to decode abilities: %w", err)
	}
	st.Abilities = skills.NewAbilitySet(abilities...)

	table := &skills.Table{}
	if err := yaml.Unmarshal([]byte(docs.skillTable), table); err != nil {
		return fmt.Errorf("failed to decode skill table: %w", err)
	}
	st.SkillTable = table
	return nil
}

func formatColour(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func parseColour(s string) (color.NRGBA, error) {
	if len(s) != 9 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("bad colour %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("bad colour %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// internal/datasets/postgres.go
package datasets

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	commonerrors "hoopmatch/internal/common/errors"
	"hoopmatch/internal/models"
)

const teamsQuery = `
	SELECT name, conference, division, city, timezone,
	       status, status_enum, style, playing_styles, philosophy,
	       narrative, headline, stars, watchability_score, viewing_times,
	       bandwagon_factor, dysfunction_level, injury_risk
	FROM teams
	ORDER BY name`

// LoadTeams reads the NBA reference table from Postgres. The embedded
// defaults stay authoritative when the table is empty or the database is
// not configured; callers decide the fallback.
func LoadTeams(ctx context.Context, db *sql.DB) (map[string]models.Team, error) {
	rows, err := db.QueryContext(ctx, teamsQuery)
	if err != nil {
		return nil, commonerrors.NewQueryExecutionFailedError("SELECT teams", err)
	}
	defer rows.Close()

	teams := make(map[string]models.Team)
	for rows.Next() {
		var t models.Team
		err := rows.Scan(
			&t.Name, &t.Conference, &t.Division, &t.City, &t.Timezone,
			&t.Status, &t.StatusEnum, &t.Style,
			pq.Array(&t.PlayingStyles), pq.Array(&t.Philosophy),
			&t.Narrative, &t.Headline, pq.Array(&t.Stars),
			&t.Watchability, &t.ViewingTimes,
			&t.Bandwagon, &t.Dysfunction, &t.Injuries,
		)
		if err != nil {
			return nil, commonerrors.NewQueryExecutionFailedError("SELECT teams", fmt.Errorf("scanning team row: %w", err))
		}
		teams[t.Name] = t
	}
	if err := rows.Err(); err != nil {
		return nil, commonerrors.NewQueryExecutionFailedError("SELECT teams", err)
	}
	return teams, nil
}

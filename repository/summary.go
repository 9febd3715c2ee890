package repository

import (
	"database/sql"

	"github.com/rashedkhan/hisab/model"
)

type SummaryRepoMysql struct {
	db *sql.DB
}

func NewSummaryRepoMysql(db *sql.DB) *SummaryRepoMysql {
	return &SummaryRepoMysql{db: db}
}

// Summarize reads the three ledgers' current balances and sums them. Absent
// ledgers count as zero; nothing is created on this path.
func (s *SummaryRepoMysql) Summarize(userID int) (*model.Summary, error) {
	summary := &model.Summary{}

	statement := "SELECT COALESCE((SELECT current_balance FROM cash WHERE user_id = ?), 0)"
	if err := s.db.QueryRow(statement, userID).Scan(&summary.Details.Cash); err != nil {
		return nil, err
	}

	statement = "SELECT COALESCE(SUM(balance), 0) FROM accounts WHERE user_id = ?"
	if err := s.db.QueryRow(statement, userID).Scan(&summary.Details.Accounts); err != nil {
		return nil, err
	}

	statement = `SELECT COALESCE(SUM(i.amount), 0)
					FROM due_items AS i
					INNER JOIN dues AS d
						ON i.due_id = d.id
					WHERE d.user_id = ?`
	if err := s.db.QueryRow(statement, userID).Scan(&summary.Details.Dues); err != nil {
		return nil, err
	}

	summary.CurrentBalance = summary.Details.Cash.Add(summary.Details.Accounts).Add(summary.Details.Dues)
	return summary, nil
}

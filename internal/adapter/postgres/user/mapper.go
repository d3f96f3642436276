package user

import (
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/amoura-app/amoura-backend/internal/domain"
)

// dealbreakersDoc is the JSONB document stored in users.dealbreakers.
// Absent keys mean "no preference" on that axis.
type dealbreakersDoc struct {
	Smoking          []string `json:"smoking,omitempty"`
	Drinking         []string `json:"drinking,omitempty"`
	Kids             []string `json:"kids,omitempty"`
	Goals            []string `json:"goals,omitempty"`
	Education        []string `json:"education,omitempty"`
	MinHeightCm      *int     `json:"min_height_cm,omitempty"`
	MaxHeightCm      *int     `json:"max_height_cm,omitempty"`
	MaxAgeDifference *int     `json:"max_age_difference,omitempty"`
}

func setToSlice[T ~string](set map[T]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, string(v))
	}
	return out
}

func sliceToSet[T ~string](ss []string) map[T]struct{} {
	if len(ss) == 0 {
		return nil
	}
	set := make(map[T]struct{}, len(ss))
	for _, s := range ss {
		set[T(s)] = struct{}{}
	}
	return set
}

func encodeDealbreakers(d domain.Dealbreakers) ([]byte, error) {
	doc := dealbreakersDoc{
		Smoking:          setToSlice(d.AcceptableSmoking),
		Drinking:         setToSlice(d.AcceptableDrinking),
		Kids:             setToSlice(d.AcceptableKids),
		Goals:            setToSlice(d.AcceptableGoals),
		Education:        setToSlice(d.AcceptableEducation),
		MinHeightCm:      d.MinHeightCm,
		MaxHeightCm:      d.MaxHeightCm,
		MaxAgeDifference: d.MaxAgeDifference,
	}
	return json.Marshal(doc)
}

func decodeDealbreakers(raw []byte) (domain.Dealbreakers, error) {
	var doc dealbreakersDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return domain.Dealbreakers{}, fmt.Errorf("decode dealbreakers: %w", err)
	}
	return domain.Dealbreakers{
		AcceptableSmoking:   sliceToSet[domain.Smoking](doc.Smoking),
		AcceptableDrinking:  sliceToSet[domain.Drinking](doc.Drinking),
		AcceptableKids:      sliceToSet[domain.KidsStance](doc.Kids),
		AcceptableGoals:     sliceToSet[domain.RelationshipGoal](doc.Goals),
		AcceptableEducation: sliceToSet[domain.Education](doc.Education),
		MinHeightCm:         doc.MinHeightCm,
		MaxHeightCm:         doc.MaxHeightCm,
		MaxAgeDifference:    doc.MaxAgeDifference,
	}, nil
}

// enumOrNil converts an optional enum value to a nullable column value.
// The zero value of every profile enum is the empty string, which is
// stored as NULL.
func enumOrNil[T ~string](v T) *string {
	if v == "" {
		return nil
	}
	s := string(v)
	return &s
}

func enumFromNullable[T ~string](s *string) T {
	if s == nil {
		return T("")
	}
	return T(*s)
}

// scanUser reads one row in userColumns order into a domain.User.
func scanUser(row pgx.Row) (domain.User, error) {
	var (
		u            domain.User
		state        string
		gender       string
		interestedIn []string
		interests    []string

		smoking, drinking, kidsStance, goal, education *string
		paceMsg, paceDate, paceStyle, paceDepth        *string

		dealbreakers []byte
	)

	err := row.Scan(
		&u.ID, &u.Name, &state, &gender, &interestedIn,
		&u.Age, &u.MinAge, &u.MaxAge,
		&u.Lat, &u.Lon, &u.MaxDistanceKm, &u.HeightCm,
		&interests,
		&smoking, &drinking, &kidsStance, &goal, &education,
		&paceMsg, &paceDate, &paceStyle, &paceDepth,
		&dealbreakers,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}

	u.State = domain.UserState(state)
	u.Gender = domain.Gender(gender)
	u.InterestedIn = sliceToSet[domain.Gender](interestedIn)
	u.Interests = sliceToSet[domain.Interest](interests)
	u.Lifestyle = domain.Lifestyle{
		Smoking:          enumFromNullable[domain.Smoking](smoking),
		Drinking:         enumFromNullable[domain.Drinking](drinking),
		KidsStance:       enumFromNullable[domain.KidsStance](kidsStance),
		RelationshipGoal: enumFromNullable[domain.RelationshipGoal](goal),
		Education:        enumFromNullable[domain.Education](education),
	}
	u.Pace = domain.PacePreferences{
		MessagingFrequency: enumFromNullable[domain.MessagingFrequency](paceMsg),
		TimeToFirstDate:    enumFromNullable[domain.TimeToFirstDate](paceDate),
		CommunicationStyle: enumFromNullable[domain.CommunicationStyle](paceStyle),
		DepthPreference:    enumFromNullable[domain.DepthPreference](paceDepth),
	}

	u.Dealbreakers, err = decodeDealbreakers(dealbreakers)
	if err != nil {
		return domain.User{}, err
	}

	return u, nil
}

func scanUsers(rows pgx.Rows) ([]domain.User, error) {
	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user rows: %w", err)
	}
	return users, nil
}

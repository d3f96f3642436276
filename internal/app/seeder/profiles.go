package seeder

import (
	"time"

	"github.com/google/uuid"

	"github.com/amoura-app/amoura-backend/internal/domain"
)

// Profiles are seeded with fixed IDs so repeated runs are idempotent and
// the IDs can be referenced from demo clients and manual testing.
var profileIDs = []string{
	"6f1b24e0-0001-4a31-9e5d-0d7a1c2b3a01",
	"6f1b24e0-0002-4a31-9e5d-0d7a1c2b3a02",
	"6f1b24e0-0003-4a31-9e5d-0d7a1c2b3a03",
	"6f1b24e0-0004-4a31-9e5d-0d7a1c2b3a04",
	"6f1b24e0-0005-4a31-9e5d-0d7a1c2b3a05",
	"6f1b24e0-0006-4a31-9e5d-0d7a1c2b3a06",
	"6f1b24e0-0007-4a31-9e5d-0d7a1c2b3a07",
	"6f1b24e0-0008-4a31-9e5d-0d7a1c2b3a08",
}

func ptr[T any](v T) *T { return &v }

func anyGender() map[domain.Gender]struct{} {
	return map[domain.Gender]struct{}{
		domain.GenderFemale:    {},
		domain.GenderMale:      {},
		domain.GenderNonBinary: {},
	}
}

func seeking(genders ...domain.Gender) map[domain.Gender]struct{} {
	m := make(map[domain.Gender]struct{}, len(genders))
	for _, g := range genders {
		m[g] = struct{}{}
	}
	return m
}

// Profiles returns the demo profile set: a mix of genders, locations
// around Berlin, pace preferences, and one profile with dealbreakers,
// so every code path of the engine has data to chew on.
func Profiles(now time.Time) []domain.User {
	users := []domain.User{
		{
			Name:          "Ava",
			Gender:        domain.GenderFemale,
			InterestedIn:  seeking(domain.GenderMale),
			Age:           29,
			MinAge:        27,
			MaxAge:        38,
			Lat:           ptr(52.5200),
			Lon:           ptr(13.4050),
			MaxDistanceKm: 40,
			HeightCm:      ptr(168),
			Interests: domain.NewInterestSet(
				domain.InterestHiking, domain.InterestCooking, domain.InterestPhotography,
			),
			Lifestyle: domain.Lifestyle{
				Smoking:          domain.SmokingNever,
				Drinking:         domain.DrinkingSocially,
				KidsStance:       domain.KidsStanceSomeday,
				RelationshipGoal: domain.RelationshipGoalLongTerm,
				Education:        domain.EducationMasters,
			},
			Pace: domain.PacePreferences{
				MessagingFrequency: domain.MessagingOften,
				TimeToFirstDate:    domain.FirstDateFewDays,
				CommunicationStyle: domain.CommStyleMix,
				DepthPreference:    domain.DepthDeepChat,
			},
		},
		{
			Name:          "Noah",
			Gender:        domain.GenderMale,
			InterestedIn:  seeking(domain.GenderFemale),
			Age:           33,
			MinAge:        26,
			MaxAge:        36,
			Lat:           ptr(52.5310),
			Lon:           ptr(13.3840),
			MaxDistanceKm: 60,
			HeightCm:      ptr(183),
			Interests: domain.NewInterestSet(
				domain.InterestHiking, domain.InterestCooking, domain.InterestMusic,
			),
			Lifestyle: domain.Lifestyle{
				Smoking:          domain.SmokingNever,
				Drinking:         domain.DrinkingSocially,
				KidsStance:       domain.KidsStanceOpen,
				RelationshipGoal: domain.RelationshipGoalLongTerm,
				Education:        domain.EducationBachelors,
			},
			Pace: domain.PacePreferences{
				MessagingFrequency: domain.MessagingOften,
				TimeToFirstDate:    domain.FirstDateFewDays,
				CommunicationStyle: domain.CommStyleVoiceNotes,
				DepthPreference:    domain.DepthDeepChat,
			},
		},
		{
			Name:          "Mara",
			Gender:        domain.GenderFemale,
			InterestedIn:  seeking(domain.GenderFemale, domain.GenderNonBinary),
			Age:           26,
			MinAge:        23,
			MaxAge:        33,
			Lat:           ptr(52.4870),
			Lon:           ptr(13.4250),
			MaxDistanceKm: 25,
			Interests: domain.NewInterestSet(
				domain.InterestYoga, domain.InterestReading, domain.InterestCoffee,
			),
			Lifestyle: domain.Lifestyle{
				Smoking:          domain.SmokingSometimes,
				Drinking:         domain.DrinkingNever,
				KidsStance:       domain.KidsStanceNo,
				RelationshipGoal: domain.RelationshipGoalCasual,
			},
			Pace: domain.PacePreferences{
				MessagingFrequency: domain.MessagingConstantly,
				TimeToFirstDate:    domain.FirstDateQuickly,
				CommunicationStyle: domain.CommStyleTextOnly,
				DepthPreference:    domain.DepthSmallTalk,
			},
		},
		{
			Name:          "Jonas",
			Gender:        domain.GenderMale,
			InterestedIn:  seeking(domain.GenderFemale),
			Age:           41,
			MinAge:        30,
			MaxAge:        45,
			Lat:           ptr(52.3989), // Potsdam
			Lon:           ptr(13.0657),
			MaxDistanceKm: 80,
			HeightCm:      ptr(176),
			Interests: domain.NewInterestSet(
				domain.InterestFishing, domain.InterestCamping, domain.InterestBoardGames,
			),
			Lifestyle: domain.Lifestyle{
				Smoking:          domain.SmokingNever,
				Drinking:         domain.DrinkingRegularly,
				KidsStance:       domain.KidsStanceHasKids,
				RelationshipGoal: domain.RelationshipGoalMarriage,
				Education:        domain.EducationTradeSchool,
			},
			Pace: domain.PacePreferences{
				MessagingFrequency: domain.MessagingRarely,
				TimeToFirstDate:    domain.FirstDateWeeks,
				CommunicationStyle: domain.CommStyleInPersonOnly,
				DepthPreference:    domain.DepthDependsOnVibe,
			},
		},
		{
			Name:          "Selin",
			Gender:        domain.GenderFemale,
			InterestedIn:  seeking(domain.GenderMale),
			Age:           31,
			MinAge:        28,
			MaxAge:        40,
			Lat:           ptr(52.5160),
			Lon:           ptr(13.3779),
			MaxDistanceKm: 30,
			HeightCm:      ptr(171),
			Interests: domain.NewInterestSet(
				domain.InterestTravel, domain.InterestFoodie, domain.InterestDancing,
			),
			Lifestyle: domain.Lifestyle{
				Smoking:          domain.SmokingNever,
				Drinking:         domain.DrinkingSocially,
				KidsStance:       domain.KidsStanceSomeday,
				RelationshipGoal: domain.RelationshipGoalLongTerm,
				Education:        domain.EducationPhD,
			},
			Pace: domain.PacePreferences{
				MessagingFrequency: domain.MessagingOften,
				TimeToFirstDate:    domain.FirstDateQuickly,
				CommunicationStyle: domain.CommStyleVideoCalls,
				DepthPreference:    domain.DepthExistential,
			},
			Dealbreakers: domain.Dealbreakers{
				AcceptableSmoking: map[domain.Smoking]struct{}{
					domain.SmokingNever: {},
				},
				MinHeightCm: ptr(175),
			},
		},
		{
			Name:          "Theo",
			Gender:        domain.GenderNonBinary,
			InterestedIn:  anyGender(),
			Age:           27,
			MinAge:        22,
			MaxAge:        35,
			Lat:           ptr(52.5110),
			Lon:           ptr(13.4550),
			MaxDistanceKm: 50,
			Interests: domain.NewInterestSet(
				domain.InterestGaming, domain.InterestTech, domain.InterestMovies,
			),
			Lifestyle: domain.Lifestyle{
				Drinking:         domain.DrinkingSocially,
				RelationshipGoal: domain.RelationshipGoalUnsure,
			},
			Pace: domain.PacePreferences{
				MessagingFrequency: domain.MessagingConstantly,
				TimeToFirstDate:    domain.FirstDateFewDays,
				CommunicationStyle: domain.CommStyleMix,
				DepthPreference:    domain.DepthDependsOnVibe,
			},
		},
		{
			// No location set: sorts last in discovery, neutral distance score.
			Name:         "Ida",
			Gender:       domain.GenderFemale,
			InterestedIn: seeking(domain.GenderMale, domain.GenderNonBinary),
			Age:          35,
			MinAge:       30,
			MaxAge:       45,
			Interests: domain.NewInterestSet(
				domain.InterestGardening, domain.InterestPets, domain.InterestBaking,
			),
			Lifestyle: domain.Lifestyle{
				Smoking:    domain.SmokingNever,
				Drinking:   domain.DrinkingNever,
				KidsStance: domain.KidsStanceHasKids,
			},
		},
		{
			Name:          "Ben",
			Gender:        domain.GenderMale,
			InterestedIn:  seeking(domain.GenderFemale, domain.GenderNonBinary),
			Age:           24,
			MinAge:        21,
			MaxAge:        30,
			Lat:           ptr(52.5450),
			Lon:           ptr(13.3550),
			MaxDistanceKm: 20,
			HeightCm:      ptr(190),
			Interests: domain.NewInterestSet(
				domain.InterestGym, domain.InterestRunning, domain.InterestClimbing,
			),
			Lifestyle: domain.Lifestyle{
				Smoking:          domain.SmokingRegularly,
				Drinking:         domain.DrinkingRegularly,
				KidsStance:       domain.KidsStanceNo,
				RelationshipGoal: domain.RelationshipGoalCasual,
				Education:        domain.EducationHighSchool,
			},
			Pace: domain.PacePreferences{
				MessagingFrequency: domain.MessagingOften,
				TimeToFirstDate:    domain.FirstDateQuickly,
				CommunicationStyle: domain.CommStyleTextOnly,
				DepthPreference:    domain.DepthSmallTalk,
			},
		},
	}

	for i := range users {
		users[i].ID = uuid.MustParse(profileIDs[i])
		users[i].State = domain.UserStateActive
		users[i].CreatedAt = now
		users[i].UpdatedAt = now
	}

	return users
}

package http_event

import (
	"time"

	http_movie "github.com/humanbelnik/movienight/internal/delivery/http/movie"
	"github.com/humanbelnik/movienight/internal/model"
)

type InvitationDTO struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type EventDTO struct {
	ID              string          `json:"id"`
	HostID          string          `json:"host_id"`
	HostEmail       string          `json:"host_email"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Date            time.Time       `json:"date"`
	Location        string          `json:"location"`
	MovieOptions    []int64         `json:"movie_options"`
	SelectedMovieID *int64          `json:"selected_movie_id"`
	Invitations     []InvitationDTO `json:"invitations,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type VoteDTO struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	MovieID   int64     `json:"movie_id"`
	UserID    string    `json:"user_id"`
	Vote      *bool     `json:"vote"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TallyDTO struct {
	MovieID int64  `json:"movie_id"`
	Title   string `json:"title"`
	Yes     int    `json:"yes_votes"`
	No      int    `json:"no_votes"`
	Unset   int    `json:"unset_votes"`
	Total   int    `json:"total_votes"`
}

type SuggestionDTO struct {
	MovieID int64                `json:"movie_id"`
	Score   int                  `json:"score"`
	Movie   *http_movie.MovieDTO `json:"movie,omitempty"`
}

type AttendanceDTO struct {
	Accepted     int `json:"accepted"`
	Declined     int `json:"declined"`
	Pending      int `json:"pending"`
	TotalInvited int `json:"total_invited"`
}

type SummaryDTO struct {
	Event        EventDTO      `json:"event"`
	VoteTally    []TallyDTO    `json:"vote_tally"`
	Attendance   AttendanceDTO `json:"attendance"`
	WinningMovie *TallyDTO     `json:"winning_movie"`
}

func toInvitationDTO(inv model.Invitation) InvitationDTO {
	return InvitationDTO{
		ID:        inv.ID.String(),
		Email:     inv.Email,
		Status:    string(inv.Status),
		CreatedAt: inv.CreatedAt,
		UpdatedAt: inv.UpdatedAt,
	}
}

func toInvitationDTOs(invitations []model.Invitation) []InvitationDTO {
	out := make([]InvitationDTO, 0, len(invitations))
	for _, inv := range invitations {
		out = append(out, toInvitationDTO(inv))
	}
	return out
}

func toEventDTO(e model.Event) EventDTO {
	options := make([]int64, len(e.MovieOptions))
	copy(options, e.MovieOptions)
	return EventDTO{
		ID:              e.ID.String(),
		HostID:          e.HostID.String(),
		HostEmail:       e.HostEmail,
		Title:           e.Title,
		Description:     e.Description,
		Date:            e.Date,
		Location:        e.Location,
		MovieOptions:    options,
		SelectedMovieID: e.SelectedMovieID,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func toEventDetailsDTO(d model.EventDetails) EventDTO {
	dto := toEventDTO(d.Event)
	dto.Invitations = toInvitationDTOs(d.Invitations)
	return dto
}

func toVoteDTO(v model.Vote) VoteDTO {
	return VoteDTO{
		ID:        v.ID.String(),
		EventID:   v.EventID.String(),
		MovieID:   v.MovieID,
		UserID:    v.UserID.String(),
		Vote:      v.Vote,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func toTallyDTO(t model.MovieTally) TallyDTO {
	return TallyDTO{
		MovieID: t.MovieID,
		Title:   t.Title,
		Yes:     t.Yes,
		No:      t.No,
		Unset:   t.Unset,
		Total:   t.Total(),
	}
}

func toTallyDTOs(tally []model.MovieTally) []TallyDTO {
	out := make([]TallyDTO, 0, len(tally))
	for _, t := range tally {
		out = append(out, toTallyDTO(t))
	}
	return out
}

func toSuggestionDTOs(suggestions []model.Suggestion) []SuggestionDTO {
	out := make([]SuggestionDTO, 0, len(suggestions))
	for _, s := range suggestions {
		dto := SuggestionDTO{MovieID: s.MovieID, Score: s.Score}
		if s.Movie != nil {
			m := http_movie.ToMovieDTO(*s.Movie)
			dto.Movie = &m
		}
		out = append(out, dto)
	}
	return out
}

func toSummaryDTO(s model.Summary) SummaryDTO {
	dto := SummaryDTO{
		Event:     toEventDTO(s.Event),
		VoteTally: toTallyDTOs(s.Tally),
		Attendance: AttendanceDTO{
			Accepted:     s.Attendance.Accepted,
			Declined:     s.Attendance.Declined,
			Pending:      s.Attendance.Pending,
			TotalInvited: s.Attendance.TotalInvited,
		},
	}
	if s.WinningMovie != nil {
		w := toTallyDTO(*s.WinningMovie)
		dto.WinningMovie = &w
	}
	return dto
}

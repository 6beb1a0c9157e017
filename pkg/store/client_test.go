package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/calsched/calsched/pkg/event"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func TestListEvents(t *testing.T) {
	t.Run("Maps songs records to events", func(t *testing.T) {
		r := mux.NewRouter()
		r.HandleFunc("/api/songs", func(w http.ResponseWriter, req *http.Request) {
			assert.Equal(t, "event", req.URL.Query().Get("type"))
			songs := []Song{
				{ID: 1, Name: "Dentist", Author: "user", Type: "event", Data: SongData{Date: "2024-03-15", Time: "09:00", Title: "Dentist"}},
				{ID: 2, Name: "Standup", Author: "user", Type: "event", Data: SongData{Date: "2024-01-01", Time: "08:30", Title: "Standup", Repeat: event.RepeatDaily}},
			}
			json.NewEncoder(w).Encode(songs)
		}).Methods("GET")
		srv := httptest.NewServer(r)
		defer srv.Close()

		events, err := NewClient(srv.URL).ListEvents(context.Background())
		assert.NoError(t, err)
		assert.Len(t, events, 2)
		assert.Equal(t, event.Event{ID: 1, Title: "Dentist", Date: "2024-03-15", Time: "09:00", Repeat: event.RepeatNone}, events[0])
		assert.Equal(t, event.RepeatDaily, events[1].Repeat)
	})

	t.Run("Non-OK status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		events, err := NewClient(srv.URL).ListEvents(context.Background())
		assert.Error(t, err)
		assert.Nil(t, events)
	})

	t.Run("Unreachable store is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()

		_, err := NewClient(srv.URL).ListEvents(context.Background())
		assert.Error(t, err)
	})
}

func TestGetEvent(t *testing.T) {
	t.Run("Fetches a single record by id", func(t *testing.T) {
		r := mux.NewRouter()
		r.HandleFunc("/api/songs/{id}", func(w http.ResponseWriter, req *http.Request) {
			assert.Equal(t, "7", mux.Vars(req)["id"])
			json.NewEncoder(w).Encode(Song{ID: 7, Name: "Gym", Author: "user", Type: "event", Data: SongData{Date: "2024-03-15", Time: "18:00", Title: "Gym"}})
		}).Methods("GET")
		srv := httptest.NewServer(r)
		defer srv.Close()

		e, err := NewClient(srv.URL).GetEvent(context.Background(), 7)
		assert.NoError(t, err)
		assert.Equal(t, 7, e.ID)
		assert.Equal(t, "Gym", e.Title)
	})

	t.Run("Missing record is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		e, err := NewClient(srv.URL).GetEvent(context.Background(), 42)
		assert.Error(t, err)
		assert.Nil(t, e)
	})
}

func TestCreateEvent(t *testing.T) {
	t.Run("Wraps the payload in the record envelope and maps the result", func(t *testing.T) {
		r := mux.NewRouter()
		r.HandleFunc("/api/songs", func(w http.ResponseWriter, req *http.Request) {
			var song Song
			assert.NoError(t, json.NewDecoder(req.Body).Decode(&song))
			assert.Equal(t, "Lunch", song.Name)
			assert.Equal(t, "user", song.Author)
			assert.Equal(t, "event", song.Type)
			assert.Equal(t, "12:00", song.Data.Time)

			song.ID = 11
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(song)
		}).Methods("POST")
		srv := httptest.NewServer(r)
		defer srv.Close()

		created, err := NewClient(srv.URL).CreateEvent(context.Background(), SongData{
			Date:  "2024-03-15",
			Time:  "12:00",
			Title: "Lunch",
		})
		assert.NoError(t, err)
		assert.Equal(t, 11, created.ID)
		assert.Equal(t, event.RepeatNone, created.Repeat)
	})

	t.Run("Non-OK status yields no record", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer srv.Close()

		created, err := NewClient(srv.URL).CreateEvent(context.Background(), SongData{Date: "2024-03-15", Time: "12:00", Title: "Lunch"})
		assert.Error(t, err)
		assert.Nil(t, created)
	})
}

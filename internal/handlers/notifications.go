package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/fleetdesk/fleetdesk/internal/models"
	"github.com/fleetdesk/fleetdesk/internal/store"
)

func (a *API) ListNotifications(w http.ResponseWriter, r *http.Request) {
	a.delay()
	q := r.URL.Query()

	a.store.RLock()
	items := append([]models.Notification(nil), a.store.Notifications...)
	a.store.RUnlock()

	items = store.FilterBySearch(items, q.Get("search"), func(n models.Notification) []string {
		return []string{n.Title, n.Message}
	})
	items = store.FilterByField(items, q.Get("type"), func(n models.Notification) string {
		return string(n.Type)
	})
	items = store.FilterByField(items, q.Get("is_read"), func(n models.Notification) string {
		return strconv.FormatBool(n.IsRead)
	})

	a.writeJSON(w, http.StatusOK, store.Paginate(items, r.URL, store.DefaultPageSize))
}

func (a *API) GetNotification(w http.ResponseWriter, r *http.Request) {
	a.delay()
	id := idVar(r)

	a.store.RLock()
	defer a.store.RUnlock()
	for i := range a.store.Notifications {
		if a.store.Notifications[i].ID == id {
			a.writeJSON(w, http.StatusOK, a.store.Notifications[i])
			return
		}
	}
	a.notFound(w, fmt.Sprintf("Notification %d not found.", id))
}

// MarkNotificationRead handles POST /notifications/{id}/mark_read/.
func (a *API) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	a.delay()
	id := idVar(r)

	a.store.Lock()
	defer a.store.Unlock()
	for i := range a.store.Notifications {
		if a.store.Notifications[i].ID == id {
			a.store.Notifications[i].IsRead = true
			a.writeJSON(w, http.StatusOK, a.store.Notifications[i])
			return
		}
	}
	a.notFound(w, fmt.Sprintf("Notification %d not found.", id))
}

// MarkAllNotificationsRead handles POST /notifications/mark_all_read/ and
// reports how many records were flipped.
func (a *API) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	a.delay()

	a.store.Lock()
	updated := 0
	for i := range a.store.Notifications {
		if !a.store.Notifications[i].IsRead {
			a.store.Notifications[i].IsRead = true
			updated++
		}
	}
	a.store.Unlock()

	a.writeJSON(w, http.StatusOK, map[string]int{"updated": updated})
}

func (a *API) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	a.delay()
	id := idVar(r)

	a.store.Lock()
	defer a.store.Unlock()
	for i := range a.store.Notifications {
		if a.store.Notifications[i].ID == id {
			a.store.Notifications = append(a.store.Notifications[:i], a.store.Notifications[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	a.notFound(w, fmt.Sprintf("Notification %d not found.", id))
}

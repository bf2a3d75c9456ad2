package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"mazadWeb/internal/forms"
	"mazadWeb/internal/models"
	"mazadWeb/internal/push"
	"mazadWeb/utils"
)

// SessionKey is the request-context key the session middleware stores the
// resolved models.Session under.
const SessionKey = "session"

// toastPayload is the body of every error response and of mutating
// responses that carry no other data: a transient notification the shell
// flashes once and drops.
type toastPayload struct {
	Toast models.Toast `json:"toast"`
}

func sessionFrom(r *http.Request) (models.Session, bool) {
	sess, ok := r.Context().Value(SessionKey).(models.Session)
	return sess, ok
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeToast(w http.ResponseWriter, status int, toast models.Toast) {
	writeJSON(w, status, toastPayload{Toast: toast})
}

// respondError turns any service error into a toast with a fitting status.
// Only unexpected failures reach the log; expected rejections (validation,
// auth, gone records) are already explained to the user by the message.
func respondError(w http.ResponseWriter, op string, err error) {
	status, msg := errorStatus(err)
	if status >= http.StatusInternalServerError {
		log.Printf("%s: %v", op, err)
	}
	writeToast(w, status, models.ErrorToast(msg))
}

// Unauthorized and Forbidden are shared with the route middleware so gate
// rejections carry the same toast shape handlers produce.
func Unauthorized(w http.ResponseWriter) {
	writeToast(w, http.StatusUnauthorized, models.ErrorToast("يجب تسجيل الدخول أولًا"))
}

func Forbidden(w http.ResponseWriter) {
	writeToast(w, http.StatusForbidden, models.ErrorToast("ليس لديك صلاحية لهذا الإجراء"))
}

// CSRFRejected answers a mutating request whose token does not match the
// session. A reload hands the page a fresh token.
func CSRFRejected(w http.ResponseWriter) {
	writeToast(w, http.StatusForbidden, models.ErrorToast("انتهت صلاحية الصفحة، يرجى إعادة تحميلها"))
}

func errorStatus(err error) (int, string) {
	var fieldErr *forms.FieldError
	if errors.As(err, &fieldErr) {
		return http.StatusUnprocessableEntity, fieldErr.Message
	}

	switch {
	case errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusUnauthorized, "البريد الإلكتروني أو كلمة المرور غير صحيحة"
	case errors.Is(err, models.ErrSessionNotFound), errors.Is(err, models.ErrSessionExpired):
		return http.StatusUnauthorized, "انتهت الجلسة، يرجى تسجيل الدخول من جديد"
	case errors.Is(err, models.ErrInvalidVerificationCode):
		return http.StatusUnauthorized, "رمز التحقق غير صحيح"
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden, "ليس لديك صلاحية لهذا الإجراء"
	case errors.Is(err, models.ErrNoRecord),
		errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrPropertyNotFound),
		errors.Is(err, models.ErrAuctionNotFound):
		return http.StatusNotFound, "العنصر المطلوب غير موجود"
	case errors.Is(err, models.ErrDuplicateEmail):
		return http.StatusConflict, "البريد الإلكتروني مسجل مسبقًا"
	case errors.Is(err, models.ErrDuplicatePhone):
		return http.StatusConflict, "رقم الجوال مسجل مسبقًا"
	case errors.Is(err, models.ErrAuctionClosed):
		return http.StatusConflict, "المزاد غير متاح للمزايدة"
	case errors.Is(err, models.ErrBidTooLow):
		return http.StatusUnprocessableEntity, "قيمة المزايدة أقل من الحد الأدنى المطلوب"
	case errors.Is(err, models.ErrTooManyAttempts):
		return http.StatusTooManyRequests, "محاولات كثيرة، يرجى الانتظار قبل المحاولة مجددًا"
	case errors.Is(err, utils.ErrUnsupportedImage):
		return http.StatusUnprocessableEntity, "صيغة الصورة غير مدعومة"
	case errors.Is(err, utils.ErrImageTooLarge):
		return http.StatusUnprocessableEntity, "حجم الصورة يتجاوز الحد المسموح"
	case errors.Is(err, models.ErrUpstreamUnavailable):
		return http.StatusBadGateway, "الخدمة غير متاحة حاليًا، يرجى المحاولة لاحقًا"
	case errors.Is(err, push.ErrDisabled):
		return http.StatusServiceUnavailable, "الإشعارات غير متاحة على هذا الخادم"
	}
	return http.StatusInternalServerError, "حدث خطأ غير متوقع"
}

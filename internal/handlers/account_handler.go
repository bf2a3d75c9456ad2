package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"mazadWeb/internal/forms"
	"mazadWeb/internal/models"
	"mazadWeb/internal/services"
	"mazadWeb/internal/session"
)

type AccountHandler struct {
	Service *services.AccountService
	Cookie  *session.Cookie
}

// authResponse is what sign-up and sign-in answer with. The token pair
// stays server-side; the browser only ever sees the sealed cookie plus
// the CSRF token it must echo on every mutating call.
type authResponse struct {
	User      models.User  `json:"user"`
	CSRFToken string       `json:"csrf_token,omitempty"`
	Toast     models.Toast `json:"toast"`
}

// profileResponse restores page state after a reload: the signed-in user
// and the CSRF token for the session already in the cookie.
type profileResponse struct {
	User      models.User `json:"user"`
	CSRFToken string      `json:"csrf_token"`
}

func (h *AccountHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var form forms.SignUpForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeToast(w, http.StatusBadRequest, models.ErrorToast("طلب غير صالح"))
		return
	}

	sess, err := h.Service.SignUp(r.Context(), form)
	if err != nil {
		respondError(w, "SignUp", err)
		return
	}

	if err := h.Cookie.Write(w, sess.ID); err != nil {
		respondError(w, "SignUp cookie", err)
		return
	}

	writeJSON(w, http.StatusCreated, authResponse{
		User:      sess.User,
		CSRFToken: sess.CSRFSecret,
		Toast:     models.SuccessToast("تم إنشاء حسابك بنجاح، أهلًا بك"),
	})
}

func (h *AccountHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var form forms.SignInForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeToast(w, http.StatusBadRequest, models.ErrorToast("طلب غير صالح"))
		return
	}

	sess, err := h.Service.SignIn(r.Context(), form)
	if err != nil {
		respondError(w, "SignIn", err)
		return
	}

	if err := h.Cookie.Write(w, sess.ID); err != nil {
		respondError(w, "SignIn cookie", err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{
		User:      sess.User,
		CSRFToken: sess.CSRFSecret,
		Toast:     models.SuccessToast("تم تسجيل الدخول بنجاح"),
	})
}

func (h *AccountHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFrom(r)
	if !ok {
		writeToast(w, http.StatusUnauthorized, models.ErrorToast("يجب تسجيل الدخول أولًا"))
		return
	}

	if err := h.Service.SignOut(r.Context(), sess); err != nil {
		respondError(w, "SignOut", err)
		return
	}

	h.Cookie.Clear(w)
	writeToast(w, http.StatusOK, models.SuccessToast("تم تسجيل الخروج"))
}

func (h *AccountHandler) PasswordResetRequest(w http.ResponseWriter, r *http.Request) {
	var form forms.ResetRequestForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeToast(w, http.StatusBadRequest, models.ErrorToast("طلب غير صالح"))
		return
	}

	if err := h.Service.RequestPasswordReset(r.Context(), form); err != nil {
		respondError(w, "PasswordResetRequest", err)
		return
	}

	// Same answer whether or not the address exists.
	writeToast(w, http.StatusOK, models.SuccessToast("إذا كان البريد مسجلًا لدينا فستصلك رسالة برمز التحقق"))
}

func (h *AccountHandler) PasswordResetVerify(w http.ResponseWriter, r *http.Request) {
	var form forms.ResetVerifyForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeToast(w, http.StatusBadRequest, models.ErrorToast("طلب غير صالح"))
		return
	}

	if err := h.Service.VerifyResetCode(r.Context(), form); err != nil {
		respondError(w, "PasswordResetVerify", err)
		return
	}

	writeToast(w, http.StatusOK, models.SuccessToast("تم التحقق من الرمز"))
}

func (h *AccountHandler) PasswordResetConfirm(w http.ResponseWriter, r *http.Request) {
	var form forms.ResetConfirmForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeToast(w, http.StatusBadRequest, models.ErrorToast("طلب غير صالح"))
		return
	}

	if err := h.Service.ResetPassword(r.Context(), form); err != nil {
		respondError(w, "PasswordResetConfirm", err)
		return
	}

	writeToast(w, http.StatusOK, models.SuccessToast("تم تغيير كلمة المرور، يمكنك تسجيل الدخول الآن"))
}

func (h *AccountHandler) Profile(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFrom(r)
	if !ok {
		writeToast(w, http.StatusUnauthorized, models.ErrorToast("يجب تسجيل الدخول أولًا"))
		return
	}

	user, err := h.Service.Profile(r.Context(), sess)
	if err != nil {
		respondError(w, "Profile", err)
		return
	}

	writeJSON(w, http.StatusOK, profileResponse{
		User:      user,
		CSRFToken: sess.CSRFSecret,
	})
}

func (h *AccountHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFrom(r)
	if !ok {
		writeToast(w, http.StatusUnauthorized, models.ErrorToast("يجب تسجيل الدخول أولًا"))
		return
	}

	var form forms.ProfileForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeToast(w, http.StatusBadRequest, models.ErrorToast("طلب غير صالح"))
		return
	}

	user, err := h.Service.UpdateProfile(r.Context(), sess, form)
	if err != nil {
		respondError(w, "UpdateProfile", err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{
		User:  user,
		Toast: models.SuccessToast("تم حفظ التغييرات"),
	})
}

func (h *AccountHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFrom(r)
	if !ok {
		writeToast(w, http.StatusUnauthorized, models.ErrorToast("يجب تسجيل الدخول أولًا"))
		return
	}

	if err := r.ParseMultipartForm(8 << 20); err != nil {
		writeToast(w, http.StatusBadRequest, models.ErrorToast("طلب غير صالح"))
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		writeToast(w, http.StatusBadRequest, models.ErrorToast("الصورة مطلوبة"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeToast(w, http.StatusBadRequest, models.ErrorToast("تعذرت قراءة الصورة"))
		return
	}

	user, err := h.Service.UpdateAvatar(r.Context(), sess, data, header.Header.Get("Content-Type"))
	if err != nil {
		respondError(w, "UpdateAvatar", err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{
		User:  user,
		Toast: models.SuccessToast("تم تحديث الصورة الشخصية"),
	})
}

package tui

import "fmt"

// Screen text. The label set is fixed; see package catalog for option labels.
const (
	textTitle    = "مساعد الدعم التقني"
	textSubtitle = "دعنا نساعدك في العثور على الحل المناسب لجهازك"

	textProgressStart = "البداية"
	textProgressEnd   = "الحل"

	textDeviceQuestion = "ما نوع الجهاز الذي تستخدمه؟"
	textDeviceHint     = "اختر الجهاز الذي تواجه مشكلة معه"

	textOSQuestion      = "ما نظام التشغيل الذي تستخدمه؟"
	textProblemQuestion = "ما المشكلة التي تواجهها؟"

	textResultTitle    = "تم العثور على الحل!"
	textResultHeading  = "اختياراتك:"
	textResultDevice   = "الجهاز"
	textResultOS       = "نظام التشغيل"
	textResultProblem  = "المشكلة"
	textResultSummary  = "بناءً على اختياراتك، تمكنا من تحديد أفضل خطوات استكشاف الأخطاء وإصلاحها لمشكلتك المحددة."
	textActionRestart  = "ابدأ من جديد"
	textActionSupport  = "احصل على الدعم"
	textSupportMessage = "تحتاج مساعدة إضافية؟ تواصل مع فريق الدعم في أي وقت."
)

func textOSHint(deviceLabel string) string {
	return "اختر نظام تشغيل " + deviceLabel
}

func textProblemHint(deviceLabel string) string {
	return "صف المشكلة في " + deviceLabel
}

func textProgressPercent(percent int) string {
	return fmt.Sprintf("%d%% مكتمل", percent)
}

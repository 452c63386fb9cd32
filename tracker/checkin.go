package tracker

import "time"

// CanCheckinToday 判断今天还能不能签到。按日历日期比较（以now所在时区
// 为准），不是24小时冷却：23:59签到后第二天00:01就可以再签。这是刻意
// 的产品规则，不要改成滚动窗口。
func CanCheckinToday(lastCheckin *time.Time, now time.Time) bool {
	if lastCheckin == nil {
		return true
	}

	last := lastCheckin.In(now.Location())
	ly, lm, ld := last.Date()
	ny, nm, nd := now.Date()
	return ly != ny || lm != nm || ld != nd
}

// FormatDeadline 截止时间展示文本
func FormatDeadline(deadline *time.Time) string {
	if deadline == nil {
		return "No deadline"
	}
	return deadline.Format("Jan 2, 2006")
}

// DaysUntil 距离截止还有几天，按日历日差，过期为负。两个日期都换算成
// UTC零点再相减，本地时区的DST跳变不会把某一天算成23小时。
func DaysUntil(deadline *time.Time, now time.Time) int {
	if deadline == nil {
		return 0
	}
	d := deadline.In(now.Location())
	dMidnight := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	nMidnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(dMidnight.Sub(nMidnight).Hours() / 24)
}

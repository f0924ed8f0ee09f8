package constants

// Batas & folder upload gambar (banner course/subject, foto profil).
const (
	MaxImageUploadBytes = 2 * 1024 * 1024 // 2MB

	FolderCourseBanners         = "course_banners"
	FolderSubjectBanners        = "subject_banners"
	FolderStaffProfilePictures  = "staff_profile_pictures"
	FolderStudentProfilePictures = "student_profile_pictures"
)

// Ekstensi gambar yang diterima
var AllowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

package model

const (
	SectionInformasiHaji     = "informasiHaji"
	SectionRekomendasiPaspor = "rekomendasiPaspor"
	SectionBiovisa           = "biovisa"
	SectionPenjemputanKoper  = "penjemputanKoper"
	SectionMobilisasi        = "mobilisasi"

	// NoImprovementKey is the reserved "nothing to improve" option. It is
	// mutually exclusive with every other option.
	NoImprovementKey = "tidak_ada"

	DefaultMaxScale = 5
)

var (
	OccupationOptions = []string{"Pelajar/Mahasiswa", "PNS", "BUMN/BUMD", "Swasta", "Pedagang", "Tani/Nelayan", "Ibu Rumah Tangga", "Lainnya"}
	AgeOptions        = []string{"18-20 tahun", "21-30 tahun", "31-40 tahun", "41-50 tahun", "51-60 tahun", "Di atas 60 tahun"}
	GenderOptions     = []string{"Laki-laki", "Perempuan"}
	EducationOptions  = []string{"Sekolah Dasar (SD)", "Sekolah Menengah Pertama (SMP)", "Sekolah Menengah Atas (SMA)", "Strata 1 (S1)", "Strata 2 (S2)", "Strata 3 (S3)"}
)

// DefaultQuestions returns a fresh copy of the built-in configuration.
func DefaultQuestions() QuestionConfig {
	return QuestionConfig{
		Sections: []Section{
			{
				Key:             SectionInformasiHaji,
				Title:           "Penyampaian Informasi Tahapan Haji dalam Negeri",
				Code:            "IIH",
				MaxScale:        DefaultMaxScale,
				SuggestionLabel: "Saran Informasi Haji",
				Questions: []Question{
					{"q1", "Saya memahami urutan tahapan haji dalam negeri (administrasi, manasik, keberangkatan, dll) dengan jelas."},
					{"q2", "Penjelasan mengenai tahapan haji disampaikan secara rinci dan terstruktur."},
					{"q3", "Informasi tahapan haji disampaikan dengan bahasa yang mudah dimengerti."},
					{"q4", "Informasi mengenai tahapan haji mudah diakses melalui berbagai media (cetak, digital, bimbingan)."},
					{"q5", "Petugas atau narasumber memberikan informasi yang cukup dan akurat terkait setiap tahapan."},
					{"q6", "Informasi setiap tahapan disampaikan sesuai waktu yang dibutuhkan (tidak terlambat/tidak terlalu dini)."},
					{"q7", "Perubahan jadwal atau prosedur disampaikan dengan segera dan jelas."},
					{"q8", "Media penyampaian informasi (aplikasi, media sosial, leaflet, bimbingan manasik) sangat membantu memahami tahapan."},
					{"q9", "Bimbingan manasik efektif dalam menjelaskan setiap tahapan haji yang harus dijalani."},
					{"q10", "Secara keseluruhan, saya puas terhadap penyampaian informasi mengenai tahapan haji dalam negeri."},
				},
			},
			{
				Key:             SectionRekomendasiPaspor,
				Title:           "Penerbitan Rekomendasi Paspor",
				Code:            "IKP",
				MaxScale:        DefaultMaxScale,
				SuggestionLabel: "Saran Rekomendasi Paspor",
				Questions: []Question{
					{"rp1", "Seberapa puas Anda terhadap kejelasan informasi yang diberikan terkait proses penerbitan rekomendasi paspor?"},
					{"rp2", "Seberapa mudah proses pengajuan rekomendasi paspor yang Anda alami?"},
					{"rp3", "Seberapa cepat proses penerbitan rekomendasi paspor setelah Anda mengajukan permohonan?"},
					{"rp4", "Seberapa puas Anda terhadap sikap dan pelayanan petugas dalam proses penerbitan rekomendasi paspor?"},
					{"rp5", "Seberapa efektif komunikasi yang Anda terima terkait status permohonan rekomendasi paspor Anda?"},
					{"rp6", "Secara keseluruhan, seberapa puas Anda terhadap layanan penerbitan rekomendasi paspor?"},
				},
			},
			{
				Key:             SectionBiovisa,
				Title:           "Perekaman Sidik Jari untuk Biovisa",
				Code:            "IBV",
				MaxScale:        DefaultMaxScale,
				Optional:        true,
				SuggestionLabel: "Saran Biovisa",
				Questions: []Question{
					{"bv1", "Seberapa jelas informasi yang Anda terima terkait proses perekaman sidik jari untuk biovisa?"},
					{"bv2", "Seberapa mudah proses pendaftaran atau antrean perekaman sidik jari?"},
					{"bv3", "Seberapa puas Anda terhadap fasilitas atau kenyamanan tempat perekaman sidik jari?"},
					{"bv4", "Seberapa profesional dan ramah petugas yang melayani perekaman sidik jari?"},
					{"bv5", "Seberapa puas Anda terhadap komunikasi atau notifikasi jadwal perekaman sidik jari?"},
					{"bv6", "Seberapa puas Anda terhadap keseluruhan layanan perekaman sidik jari untuk keperluan biovisa?"},
				},
			},
			{
				Key:             SectionPenjemputanKoper,
				Title:           "Pelayanan Penjemputan dan Penyerahan Koper",
				Code:            "IPK",
				MaxScale:        DefaultMaxScale,
				Optional:        true,
				SuggestionLabel: "Saran Penjemputan Koper",
				Questions: []Question{
					{"pk1", "Seberapa puas Anda terhadap ketepatan waktu penjemputan dan penyerahan koper jemaah?"},
					{"pk2", "Seberapa puas Anda terhadap kejelasan informasi mengenai jadwal dan lokasi penjemputan dan penyerahan koper?"},
					{"pk3", "Seberapa puas Anda terhadap kemudahan proses penyerahan koper kepada petugas?"},
					{"pk4", "Seberapa puas Anda terhadap sikap dan pelayanan petugas saat penjemputan dan penyerahan koper?"},
					{"pk5", "Seberapa puas Anda terhadap koordinasi antara petugas dan jemaah dalam proses penjemputan dan penyerahan koper?"},
					{"pk6", "Seberapa puas Anda secara keseluruhan terhadap layanan penjemputan dan penyerahan koper?"},
				},
			},
			{
				Key:             SectionMobilisasi,
				Title:           "Mobilisasi ke Asrama Haji",
				Code:            "IMH",
				MaxScale:        DefaultMaxScale,
				Optional:        true,
				SuggestionLabel: "Saran Mobilisasi",
				Questions: []Question{
					{"mh1", "Seberapa puas Anda terhadap kejelasan informasi jadwal keberangkatan dan rute perjalanan?"},
					{"mh2", "Seberapa puas Anda terhadap jumlah armada yang disediakan sesuai kebutuhan jumlah jemaah?"},
					{"mh3", "Seberapa puas Anda terhadap keteraturan dan koordinasi saat proses naik-turun kendaraan?"},
					{"mh4", "Seberapa puas Anda terhadap bantuan petugas selama proses mobilisasi jemaah?"},
					{"mh5", "Seberapa puas Anda secara keseluruhan terhadap pelayanan mobilisasi dari Masjid Jami' ke Asrama Haji?"},
				},
			},
		},
		Improvements: []Option{
			{"kebijakan", "Kebijakan pelayanan"},
			{"sdm", "Profesionalisme SDM"},
			{"sarpras", "Kualitas Sarana dan Prasarana"},
			{"sistem", "Sistem informasi dan pelayanan publik"},
			{"konsultasi", "Konsultasi dan pengaduan"},
			{"pungli", "Penghilangan Praktik pungli"},
			{"prosedur", "Penghilangan praktik diluar prosedur"},
			{"calo", "Penghilangan praktik percaloan"},
			{NoImprovementKey, "Tidak ada yang perlu diperbaiki"},
		},
	}
}

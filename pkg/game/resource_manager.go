package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ResourceManager is responsible for centralized management of game resources.
// It provides loading and caching mechanisms for images, fonts and audio assets,
// ensuring that resources are loaded only once and reused throughout the game.
//
// All paths are relative to the resource file system passed to NewResourceManager
// (for example "images/player.png"). The file system is usually the embedded
// assets tree, or os.DirFS when assets are overridden from disk.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The caches are plain Go maps and the
// game loop is single-threaded, so no synchronization is needed.
//
// Usage:
//
//	rm := NewResourceManager(assetsFS, audio.NewContext(48000))
//	img, err := rm.LoadImage("images/player.png")
//	if err != nil {
//	    log.Printf("Failed to load image: %v", err)
//	}
type ResourceManager struct {
	fsys          fs.FS                    // Resource file system
	audioContext  *audio.Context           // Global audio context, nil disables audio
	imageCache    map[string]*ebiten.Image // path -> Image
	rawCache      map[string]image.Image   // path -> decoded image (used for collision masks)
	audioCache    map[string]*audio.Player // path -> Player
	fontSrcCache  map[string]*text.GoTextFaceSource
	fontFaceCache map[string]*text.GoTextFace
}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Parameters:
//   - fsys: The file system that resource paths are resolved against.
//   - audioContext: The global audio context; may be nil, in which case every
//     audio load fails with an error and the game runs silently.
//
// Returns:
//   - A pointer to a newly initialized ResourceManager with empty caches.
func NewResourceManager(fsys fs.FS, audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		fsys:          fsys,
		audioContext:  audioContext,
		imageCache:    make(map[string]*ebiten.Image),
		rawCache:      make(map[string]image.Image),
		audioCache:    make(map[string]*audio.Player),
		fontSrcCache:  make(map[string]*text.GoTextFaceSource),
		fontFaceCache: make(map[string]*text.GoTextFace),
	}
}

// DecodeImage decodes an image file without uploading it to the GPU.
// The decoded image is cached; collision masks are built from it.
//
// Returns an error if the file does not exist or cannot be decoded.
func (rm *ResourceManager) DecodeImage(p string) (image.Image, error) {
	p = cleanPath(p)
	if img, exists := rm.rawCache[p]; exists {
		return img, nil
	}

	file, err := rm.open(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", p, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", p, err)
	}

	rm.rawCache[p] = img
	return img, nil
}

// LoadImage loads an image file and caches it for future use.
// If the image has already been loaded, it returns the cached version.
//
// Returns an error if the file cannot be opened, decoded, or converted.
func (rm *ResourceManager) LoadImage(p string) (*ebiten.Image, error) {
	p = cleanPath(p)
	if cachedImage, exists := rm.imageCache[p]; exists {
		return cachedImage, nil
	}

	img, err := rm.DecodeImage(p)
	if err != nil {
		return nil, err
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[p] = ebitenImg
	return ebitenImg, nil
}

// LoadImageSequence loads numbered frames "<dir>/0.png" .. "<dir>/<count-1>.png".
//
// Returns the decoded frames or the first error encountered.
func (rm *ResourceManager) LoadImageSequence(dir string, count int) ([]image.Image, error) {
	frames := make([]image.Image, 0, count)
	for i := 0; i < count; i++ {
		img, err := rm.DecodeImage(path.Join(dir, fmt.Sprintf("%d.png", i)))
		if err != nil {
			return nil, fmt.Errorf("failed to load frame %d of %s: %w", i, dir, err)
		}
		frames = append(frames, img)
	}
	return frames, nil
}

// LoadAudio loads a music track wrapped in an infinite loop.
// Supported formats: WAV (.wav), MP3 (.mp3) and OGG Vorbis (.ogg).
//
// Returns:
//   - A pointer to the audio player (ready to play, but not started).
//   - An error if the file cannot be opened, decoded, or the format is unsupported.
func (rm *ResourceManager) LoadAudio(p string) (*audio.Player, error) {
	return rm.loadPlayer(p, true)
}

// LoadSoundEffect loads a one-shot sound effect.
// Unlike LoadAudio, the stream is NOT wrapped in an infinite loop.
func (rm *ResourceManager) LoadSoundEffect(p string) (*audio.Player, error) {
	return rm.loadPlayer(p, false)
}

func (rm *ResourceManager) loadPlayer(p string, loop bool) (*audio.Player, error) {
	p = cleanPath(p)
	cacheKey := p
	if loop {
		cacheKey = "loop:" + p
	}
	if cachedPlayer, exists := rm.audioCache[cacheKey]; exists {
		return cachedPlayer, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("audio context not available, cannot load %s", p)
	}

	file, err := rm.open(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file %s: %w", p, err)
	}
	defer file.Close()

	// 整个文件读入内存，解码流可以随意 Seek
	audioData, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", p, err)
	}
	reader := bytes.NewReader(audioData)

	var stream interface {
		io.ReadSeeker
		Length() int64
	}

	sampleRate := rm.audioContext.SampleRate()
	switch ext := strings.ToLower(path.Ext(p)); ext {
	case ".wav":
		s, err := wav.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV audio %s: %w", p, err)
		}
		stream = s
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", p, err)
		}
		stream = s
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", p, err)
		}
		stream = s
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .mp3, .ogg)", ext)
	}

	var src io.Reader = stream
	if loop {
		src = audio.NewInfiniteLoop(stream, stream.Length())
	}

	player, err := rm.audioContext.NewPlayer(src)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", p, err)
	}

	rm.audioCache[cacheKey] = player
	return player, nil
}

// LoadFont loads a TrueType/OpenType font and creates a text face with the given size.
// Both the parsed source and the face are cached.
//
// Returns an error if the file cannot be read or parsed.
func (rm *ResourceManager) LoadFont(p string, size float64) (*text.GoTextFace, error) {
	p = cleanPath(p)
	cacheKey := fmt.Sprintf("%s:%.1f", p, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	source, exists := rm.fontSrcCache[p]
	if !exists {
		file, err := rm.open(p)
		if err != nil {
			return nil, fmt.Errorf("failed to open font file %s: %w", p, err)
		}
		fontData, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read font file %s: %w", p, err)
		}
		source, err = text.NewGoTextFaceSource(bytes.NewReader(fontData))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source for %s: %w", p, err)
		}
		rm.fontSrcCache[p] = source
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face, nil
}

func (rm *ResourceManager) open(p string) (fs.File, error) {
	if rm.fsys == nil {
		return nil, fmt.Errorf("no resource file system configured")
	}
	return rm.fsys.Open(p)
}

// cleanPath 统一为 fs.FS 使用的正斜杠相对路径
func cleanPath(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	p = strings.TrimPrefix(p, "./")
	return strings.TrimPrefix(p, "assets/")
}
